package canvas

import (
	"math"

	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/profile"
)

// Scene is the 3D view.
//
// Canvas coordinates are normalized to [-1, 1] on both axes with the
// origin at the centre of the view.
type Scene struct {
	Yaw, Pitch float64
	Zoom       float64
	Offset     event.Point

	// Picked is the last point picked on the displayed volume.
	Picked *event.Point

	// Extent is the half-width of the displayed volume in canvas units
	// at zoom 1.
	Extent float64
}

// NewScene creates a 3D scene at its home position.
func NewScene() *Scene {
	return &Scene{Zoom: 1, Extent: 0.5}
}

// ViewType implements profile.Panel.
func (s *Scene) ViewType() profile.ViewType {
	return profile.ViewScene3D
}

// Rotate turns the scene by a canvas displacement. Pitch is limited to
// straight up and straight down.
func (s *Scene) Rotate(d event.Point) {
	s.Yaw = math.Mod(s.Yaw+d.X*180+360, 360)
	s.Pitch = clampf(s.Pitch+d.Y*90, -90, 90)
}

// ZoomBy multiplies the zoom factor.
func (s *Scene) ZoomBy(f float64) {
	s.Zoom = clampf(s.Zoom*f, 0.1, 20)
}

// PanBy shifts the scene.
func (s *Scene) PanBy(d event.Point) {
	s.Offset = event.Point{X: s.Offset.X + d.X, Y: s.Offset.Y + d.Y}
}

// Pick records the point under p if it hits the displayed volume.
func (s *Scene) Pick(p event.Point) bool {
	half := s.Extent * s.Zoom
	q := p.Sub(s.Offset)
	if math.Abs(q.X) > half || math.Abs(q.Y) > half {
		return false
	}
	s.Picked = &q
	return true
}

// Reset returns the scene to its home position.
func (s *Scene) Reset() {
	s.Yaw, s.Pitch, s.Zoom = 0, 0, 1
	s.Offset = event.Point{}
	s.Picked = nil
}
