// Package event defines the normalized input event taxonomy delivered to
// interaction profiles.
//
// Raw key and mouse input from the windowing layer is translated into Event
// values before dispatch. Each Event carries a Kind, which together with the
// active interaction mode selects the handler method that runs.
package event

import (
	"fmt"
	"time"

	"github.com/dshills/viewprofile/internal/input/key"
)

// Kind identifies a hardware input transition.
type Kind uint8

const (
	// KindNone indicates no event.
	KindNone Kind = iota

	LeftMouseDown
	LeftMouseDrag
	LeftMouseUp
	MiddleMouseDown
	MiddleMouseDrag
	MiddleMouseUp
	RightMouseDown
	RightMouseDrag
	RightMouseUp
	MouseMove
	MouseWheel
	MouseEnter
	MouseLeave
	Char
	KeyDown
	KeyUp

	kindCount
)

var kindNames = [...]string{
	KindNone:        "None",
	LeftMouseDown:   "LeftMouseDown",
	LeftMouseDrag:   "LeftMouseDrag",
	LeftMouseUp:     "LeftMouseUp",
	MiddleMouseDown: "MiddleMouseDown",
	MiddleMouseDrag: "MiddleMouseDrag",
	MiddleMouseUp:   "MiddleMouseUp",
	RightMouseDown:  "RightMouseDown",
	RightMouseDrag:  "RightMouseDrag",
	RightMouseUp:    "RightMouseUp",
	MouseMove:       "MouseMove",
	MouseWheel:      "MouseWheel",
	MouseEnter:      "MouseEnter",
	MouseLeave:      "MouseLeave",
	Char:            "Char",
	KeyDown:         "KeyDown",
	KeyUp:           "KeyUp",
}

// String returns the canonical event name used in interaction tables.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind returns the Kind with the given canonical name.
func ParseKind(name string) (Kind, error) {
	for k := LeftMouseDown; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("unknown event kind %q", name)
}

// Kinds returns every valid event kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := LeftMouseDown; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// IsMouse returns true for mouse events.
func (k Kind) IsMouse() bool {
	return k >= LeftMouseDown && k <= MouseLeave
}

// IsKey returns true for keyboard events.
func (k Kind) IsKey() bool {
	return k >= Char && k <= KeyUp
}

// IsDown returns true for button press events.
func (k Kind) IsDown() bool {
	return k == LeftMouseDown || k == MiddleMouseDown || k == RightMouseDown
}

// IsDrag returns true for button drag events.
func (k Kind) IsDrag() bool {
	return k == LeftMouseDrag || k == MiddleMouseDrag || k == RightMouseDrag
}

// IsUp returns true for button release events.
func (k Kind) IsUp() bool {
	return k == LeftMouseUp || k == MiddleMouseUp || k == RightMouseUp
}

// Point is a position in canvas coordinates.
type Point struct {
	X float64
	Y float64
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Event is a single normalized input event.
type Event struct {
	// Kind is the input transition.
	Kind Kind

	// Position is where the event happened, in canvas coordinates.
	Position Point

	// DownPosition is where the current button gesture started.
	// Only meaningful for drag and release events.
	DownPosition Point

	// LastPosition is the position of the previous event in the gesture.
	LastPosition Point

	// Modifiers are the modifier keys held when the event occurred.
	Modifiers key.Modifier

	// Key is the key for KeyDown, KeyUp and Char events.
	Key key.Key

	// Rune is the character for Char events with Key == key.KeyRune.
	Rune rune

	// WheelDelta is positive for wheel up, negative for wheel down.
	WheelDelta int

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// Delta returns the movement since the previous event of the gesture.
func (e *Event) Delta() Point {
	return e.Position.Sub(e.LastPosition)
}

// String returns a compact description used in logs.
func (e *Event) String() string {
	switch {
	case e.Kind == Char && e.Key == key.KeyRune:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Rune)
	case e.Kind.IsKey():
		return fmt.Sprintf("%s(%s)", e.Kind, e.Key)
	case e.Kind == MouseWheel:
		return fmt.Sprintf("%s(%d)", e.Kind, e.WheelDelta)
	default:
		return fmt.Sprintf("%s(%.1f,%.1f)", e.Kind, e.Position.X, e.Position.Y)
	}
}
