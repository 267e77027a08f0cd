package canvas

import (
	"math"

	"github.com/dshills/viewprofile/internal/input/event"
)

// Shape is the kind of an annotation.
type Shape string

const (
	ShapeLine    Shape = "line"
	ShapeArrow   Shape = "arrow"
	ShapePoint   Shape = "point"
	ShapeRect    Shape = "rect"
	ShapeEllipse Shape = "ellipse"
	ShapeText    Shape = "text"
)

// hitTolerance is how far from an annotation, in canvas units, a press
// still selects it.
const hitTolerance = 1.5

// Annotation is a shape drawn on one plane of a slice view.
type Annotation struct {
	Shape Shape
	From  event.Point
	To    event.Point
	Text  string

	// Axis and Index identify the plane the annotation belongs to.
	Axis  int
	Index int
}

// Bounds returns the bounding rectangle of the annotation.
func (a *Annotation) Bounds() Rect {
	return RectFrom(a.From, a.To)
}

// Empty reports whether the shape has no extent: a line or arrow whose
// ends coincide, or a rectangle or ellipse with zero width or height.
// Points and text are never empty.
func (a *Annotation) Empty() bool {
	switch a.Shape {
	case ShapeLine, ShapeArrow:
		return a.From == a.To
	case ShapeRect, ShapeEllipse:
		return a.From.X == a.To.X || a.From.Y == a.To.Y
	}
	return false
}

// Move translates the annotation by d.
func (a *Annotation) Move(d event.Point) {
	a.From = event.Point{X: a.From.X + d.X, Y: a.From.Y + d.Y}
	a.To = event.Point{X: a.To.X + d.X, Y: a.To.Y + d.Y}
}

func (a *Annotation) distance(p event.Point) float64 {
	switch a.Shape {
	case ShapeLine, ShapeArrow:
		return segmentDistance(p, a.From, a.To)
	default:
		r := a.Bounds()
		dx := math.Max(math.Max(r.Min.X-p.X, 0), p.X-r.Max.X)
		dy := math.Max(math.Max(r.Min.Y-p.Y, 0), p.Y-r.Max.Y)
		return math.Hypot(dx, dy)
	}
}

// Annotate starts a new annotation at p on the current plane and returns it.
func (s *Slice) Annotate(shape Shape, p event.Point) *Annotation {
	a := &Annotation{
		Shape: shape,
		From:  p,
		To:    p,
		Axis:  s.Axis,
		Index: s.Location[s.Axis],
	}
	s.Annotations = append(s.Annotations, a)
	return a
}

// Discard removes a from the slice.
func (s *Slice) Discard(a *Annotation) {
	for i, b := range s.Annotations {
		if b == a {
			s.Annotations = append(s.Annotations[:i], s.Annotations[i+1:]...)
			return
		}
	}
}

// Visible returns the annotations on the current plane.
func (s *Slice) Visible() []*Annotation {
	var out []*Annotation
	for _, a := range s.Annotations {
		if a.Axis == s.Axis && a.Index == s.Location[s.Axis] {
			out = append(out, a)
		}
	}
	return out
}

// AnnotationAt returns the visible annotation nearest to p, if one lies
// within the hit tolerance. Later annotations win ties.
func (s *Slice) AnnotationAt(p event.Point) *Annotation {
	var hit *Annotation
	best := hitTolerance
	for _, a := range s.Visible() {
		if d := a.distance(p); d <= best {
			hit, best = a, d
		}
	}
	return hit
}

func segmentDistance(p, a, b event.Point) float64 {
	d := b.Sub(a)
	l2 := d.X*d.X + d.Y*d.Y
	if l2 == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := clampf(((p.X-a.X)*d.X+(p.Y-a.Y)*d.Y)/l2, 0, 1)
	return math.Hypot(p.X-(a.X+t*d.X), p.Y-(a.Y+t*d.Y))
}
