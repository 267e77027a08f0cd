package canvas

import (
	"math"

	"github.com/dshills/viewprofile/internal/input/event"
)

// Limits of the edit tool parameters.
const (
	MaxBrushSize = 25
	MaxRadius    = 50
)

// Brush selects or deselects a square of BrushSize voxels centred on p,
// on the current plane. It returns the number of voxels changed.
func (s *Slice) Brush(p event.Point, on bool) int {
	centre, _ := s.VoxelAt(p)
	xa, ya := s.PlaneAxes()
	half := s.BrushSize / 2
	lo := -half
	hi := s.BrushSize - half - 1

	n := 0
	for dy := lo; dy <= hi; dy++ {
		for dx := lo; dx <= hi; dx++ {
			v := centre
			v[xa] += dx
			v[ya] += dy
			if !s.Image.Contains(v) || s.Selection.Has(v) == on {
				continue
			}
			s.Selection.Set(v, on)
			n++
		}
	}
	return n
}

// BrushStroke applies Brush along the segment from a to b so fast drags
// leave no gaps.
func (s *Slice) BrushStroke(a, b event.Point, on bool) int {
	d := b.Sub(a)
	steps := int(math.Ceil(math.Max(math.Abs(d.X), math.Abs(d.Y))))
	if steps == 0 {
		return s.Brush(b, on)
	}
	n := 0
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		n += s.Brush(event.Point{X: a.X + d.X*t, Y: a.Y + d.Y*t}, on)
	}
	return n
}

// SelectByIntensity replaces the selection with the voxels connected to the
// seed under p, on the current plane, whose value lies within Threshold of
// the seed value and whose distance from it is at most Radius.
func (s *Slice) SelectByIntensity(p event.Point) int {
	seed, ok := s.VoxelAt(p)
	if !ok {
		return 0
	}
	ref := float64(s.Image.At(seed))
	s.Selection.Clear()
	return s.flood(seed, func(v Voxel) bool {
		if dist(seed, v) > s.Radius {
			return false
		}
		return math.Abs(float64(s.Image.At(v))-ref) <= s.Threshold
	})
}

// FillRegion selects the unselected region around p bounded by selected
// voxels or the image edge, on the current plane.
func (s *Slice) FillRegion(p event.Point) int {
	seed, ok := s.VoxelAt(p)
	if !ok || s.Selection.Has(seed) {
		return 0
	}
	return s.flood(seed, func(v Voxel) bool {
		return !s.Selection.Has(v)
	})
}

// FillSelection writes FillValue into every selected voxel.
func (s *Slice) FillSelection() int {
	vs := s.Selection.Voxels()
	for _, v := range vs {
		s.Image.Set(v, s.FillValue)
	}
	return len(vs)
}

// SetCursor places the selection cursor over p, or hides it when p is
// outside the image.
func (s *Slice) SetCursor(p event.Point) {
	v, ok := s.VoxelAt(p)
	if !ok {
		s.Cursor = nil
		return
	}
	s.Cursor = &v
}

// ChangeBrush grows or shrinks the brush.
func (s *Slice) ChangeBrush(n int) {
	s.BrushSize = min(max(s.BrushSize+n, 1), MaxBrushSize)
}

// ChangeThreshold adjusts the intensity threshold.
func (s *Slice) ChangeThreshold(d float64) {
	s.Threshold = math.Max(s.Threshold+d, 0)
}

// ChangeRadius adjusts the search radius.
func (s *Slice) ChangeRadius(d float64) {
	s.Radius = clampf(s.Radius+d, 0, MaxRadius)
}

// flood selects the 4-connected voxels reachable from seed on the current
// plane for which accept holds.
func (s *Slice) flood(seed Voxel, accept func(Voxel) bool) int {
	xa, ya := s.PlaneAxes()
	seen := map[Voxel]bool{seed: true}
	queue := []Voxel{seed}
	n := 0

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if !accept(v) {
			continue
		}
		if !s.Selection.Has(v) {
			s.Selection.Set(v, true)
			n++
		}
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			w := v
			w[xa] += d[0]
			w[ya] += d[1]
			if !seen[w] && s.Image.Contains(w) {
				seen[w] = true
				queue = append(queue, w)
			}
		}
	}
	return n
}

func dist(a, b Voxel) float64 {
	var sum float64
	for i := range 3 {
		sum += sq(float64(a[i] - b[i]))
	}
	return math.Sqrt(sum)
}
