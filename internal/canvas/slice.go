package canvas

import (
	"math"

	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/profile"
)

// Zoom limits of slice views.
const (
	MinZoom = 1.0
	MaxZoom = 16.0
)

// Rect is an axis-aligned canvas rectangle.
type Rect struct {
	Min, Max event.Point
}

// RectFrom returns the rectangle spanned by two corners.
func RectFrom(a, b event.Point) Rect {
	return Rect{
		Min: event.Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: event.Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Box is an inclusive voxel bounding box.
type Box struct {
	Lo, Hi Voxel
}

// Contains returns true if v lies inside the box.
func (b Box) Contains(v Voxel) bool {
	for i := range 3 {
		if v[i] < b.Lo[i] || v[i] > b.Hi[i] {
			return false
		}
	}
	return true
}

// PromptFunc asks the user for a line of text. It returns false when the
// prompt was cancelled.
type PromptFunc func(label string) (string, bool)

// Slice is a 2D view of an Image, cut orthogonally to one axis.
//
// Canvas coordinates are expressed in voxels of the displayed plane before
// zoom and pan are applied: canvas X runs along the first in-plane axis and
// canvas Y along the second.
type Slice struct {
	view  profile.ViewType
	Image *Image

	// Axis is the image axis orthogonal to the displayed plane.
	Axis int

	// Location is the cursor position in voxel coordinates.
	Location Voxel

	Zoom       float64
	Pan        event.Point
	Brightness float64
	Contrast   float64

	// ZoomRect is the rectangle being drawn in zoom mode, if any.
	ZoomRect *Rect

	Selection *Selection
	Cursor    *Voxel
	BrushSize int
	Threshold float64
	Radius    float64
	FillValue float32

	Crop Box

	Annotations []*Annotation

	// TopRow is the first slice row shown by a lightbox view.
	TopRow  int
	Columns int

	Prompt PromptFunc
}

// NewSlice creates a slice view of im for the given view type, centred on
// the image.
func NewSlice(view profile.ViewType, im *Image) *Slice {
	s := &Slice{
		view:       view,
		Image:      im,
		Axis:       2,
		Zoom:       MinZoom,
		Brightness: 0.5,
		Contrast:   0.5,
		Selection:  NewSelection(),
		BrushSize:  1,
		Threshold:  10,
		Radius:     5,
		FillValue:  1,
		Columns:    4,
	}
	for i := range 3 {
		s.Location[i] = im.Dims[i] / 2
		s.Crop.Hi[i] = im.Dims[i] - 1
	}
	return s
}

// ViewType implements profile.Panel.
func (s *Slice) ViewType() profile.ViewType {
	return s.view
}

// PlaneAxes returns the image axes along canvas X and canvas Y.
func (s *Slice) PlaneAxes() (int, int) {
	switch s.Axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

// VoxelAt converts a canvas point on the current plane to a voxel and
// reports whether it lies inside the image.
func (s *Slice) VoxelAt(p event.Point) (Voxel, bool) {
	xa, ya := s.PlaneAxes()
	v := s.Location
	v[xa] = int(math.Floor(p.X))
	v[ya] = int(math.Floor(p.Y))
	return v, s.Image.Contains(v)
}

// Navigate moves the cursor to the voxel under p. Points outside the image
// are clamped onto its edge.
func (s *Slice) Navigate(p event.Point) {
	v, _ := s.VoxelAt(p)
	s.Location = s.clamp(v)
}

// Step moves the cursor by d voxels, clamped to the image.
func (s *Slice) Step(d Voxel) {
	var v Voxel
	for i := range 3 {
		v[i] = s.Location[i] + d[i]
	}
	s.Location = s.clamp(v)
}

// ChangeSlice moves the displayed plane by n along the view axis.
func (s *Slice) ChangeSlice(n int) {
	var d Voxel
	d[s.Axis] = n
	s.Step(d)
}

// ZoomBy multiplies the zoom factor, keeping it within limits.
func (s *Slice) ZoomBy(f float64) {
	s.Zoom = clampf(s.Zoom*f, MinZoom, MaxZoom)
}

// PanBy shifts the displayed region by d canvas units.
func (s *Slice) PanBy(d event.Point) {
	s.Pan.X -= d.X
	s.Pan.Y -= d.Y
}

// ZoomToRect zooms so that r fills the plane and centres the view on it.
// Degenerate rectangles are ignored.
func (s *Slice) ZoomToRect(r Rect) bool {
	if r.Width() < 1 || r.Height() < 1 {
		return false
	}
	xa, ya := s.PlaneAxes()
	fx := float64(s.Image.Dims[xa]) / r.Width()
	fy := float64(s.Image.Dims[ya]) / r.Height()
	s.Zoom = clampf(math.Min(fx, fy), MinZoom, MaxZoom)
	s.Pan = event.Point{
		X: (r.Min.X+r.Max.X)/2 - float64(s.Image.Dims[xa])/2,
		Y: (r.Min.Y+r.Max.Y)/2 - float64(s.Image.Dims[ya])/2,
	}
	return true
}

// AdjustBriCon shifts brightness and contrast, both kept within [0, 1].
func (s *Slice) AdjustBriCon(db, dc float64) {
	s.Brightness = clampf(s.Brightness+db, 0, 1)
	s.Contrast = clampf(s.Contrast+dc, 0, 1)
}

// DisplayRange returns the intensity window implied by brightness and
// contrast.
func (s *Slice) DisplayRange() (lo, hi float64) {
	dmin, dmax := s.Image.Range()
	span := float64(dmax - dmin)
	if span == 0 {
		span = 1
	}
	centre := float64(dmin) + span*(1-s.Brightness)
	width := span * 2 * (1 - s.Contrast)
	if width < span/100 {
		width = span / 100
	}
	return centre - width/2, centre + width/2
}

// Pick moves the cursor to the voxel under p if it holds a non-zero value.
// It reports whether anything was found.
func (s *Slice) Pick(p event.Point) bool {
	v, ok := s.VoxelAt(p)
	if !ok || s.Image.At(v) == 0 {
		return false
	}
	s.Location = v
	return true
}

func (s *Slice) clamp(v Voxel) Voxel {
	for i := range 3 {
		v[i] = min(max(v[i], 0), s.Image.Dims[i]-1)
	}
	return v
}

func clampf(f, lo, hi float64) float64 {
	return math.Min(math.Max(f, lo), hi)
}
