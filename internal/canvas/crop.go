package canvas

import (
	"math"

	"github.com/dshills/viewprofile/internal/input/event"
)

// CropEdge identifies one in-plane edge of the crop box.
type CropEdge uint8

const (
	EdgeNone CropEdge = iota
	EdgeLeft
	EdgeRight
	EdgeTop
	EdgeBottom
)

// GrabCropEdge returns the crop box edge nearest to p on the current plane.
func (s *Slice) GrabCropEdge(p event.Point) CropEdge {
	xa, ya := s.PlaneAxes()
	lox, hix := float64(s.Crop.Lo[xa]), float64(s.Crop.Hi[xa]+1)
	loy, hiy := float64(s.Crop.Lo[ya]), float64(s.Crop.Hi[ya]+1)

	best, edge := math.Inf(1), EdgeNone
	for _, c := range []struct {
		d float64
		e CropEdge
	}{
		{math.Abs(p.X - lox), EdgeLeft},
		{math.Abs(p.X - hix), EdgeRight},
		{math.Abs(p.Y - loy), EdgeTop},
		{math.Abs(p.Y - hiy), EdgeBottom},
	} {
		if c.d < best {
			best, edge = c.d, c.e
		}
	}
	return edge
}

// MoveCropEdge moves edge to the voxel under p. The box never inverts and
// never leaves the image.
func (s *Slice) MoveCropEdge(edge CropEdge, p event.Point) {
	xa, ya := s.PlaneAxes()
	x := min(max(int(math.Floor(p.X)), 0), s.Image.Dims[xa]-1)
	y := min(max(int(math.Floor(p.Y)), 0), s.Image.Dims[ya]-1)

	switch edge {
	case EdgeLeft:
		s.Crop.Lo[xa] = min(x, s.Crop.Hi[xa])
	case EdgeRight:
		s.Crop.Hi[xa] = max(x, s.Crop.Lo[xa])
	case EdgeTop:
		s.Crop.Lo[ya] = min(y, s.Crop.Hi[ya])
	case EdgeBottom:
		s.Crop.Hi[ya] = max(y, s.Crop.Lo[ya])
	}
}
