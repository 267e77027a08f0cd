// Package mouse turns raw pointer samples into button gestures.
//
// Windowing layers usually report the pointer as a position plus the set of
// buttons currently held. The Normalizer compares each sample with the
// previous one and emits the Down, Drag, Up, Move and Wheel events of the
// event taxonomy, filling in the gesture start and previous positions that
// drag handlers need.
package mouse

import (
	"sync"
	"time"

	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/input/key"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// kinds returns the down, drag and up kinds for the button.
func (b Button) kinds() (down, drag, up event.Kind) {
	switch b {
	case ButtonLeft:
		return event.LeftMouseDown, event.LeftMouseDrag, event.LeftMouseUp
	case ButtonMiddle:
		return event.MiddleMouseDown, event.MiddleMouseDrag, event.MiddleMouseUp
	case ButtonRight:
		return event.RightMouseDown, event.RightMouseDrag, event.RightMouseUp
	}
	return event.KindNone, event.KindNone, event.KindNone
}

// Buttons is the set of buttons held in a sample.
type Buttons uint8

const (
	HeldLeft Buttons = 1 << iota
	HeldMiddle
	HeldRight
)

// Has returns true if b is held.
func (s Buttons) Has(b Button) bool {
	switch b {
	case ButtonLeft:
		return s&HeldLeft != 0
	case ButtonMiddle:
		return s&HeldMiddle != 0
	case ButtonRight:
		return s&HeldRight != 0
	}
	return false
}

// primary picks the button that starts a gesture when several are
// pressed in the same sample.
func (s Buttons) primary() Button {
	switch {
	case s&HeldLeft != 0:
		return ButtonLeft
	case s&HeldRight != 0:
		return ButtonRight
	case s&HeldMiddle != 0:
		return ButtonMiddle
	}
	return ButtonNone
}

// Gesture is the button gesture in progress. The zero value means no
// button is held.
type Gesture struct {
	Button Button

	// Start is where the button went down; Current is the position of the
	// last event of the gesture.
	Start   event.Point
	Current event.Point
}

// Active returns true while a button is held.
func (g Gesture) Active() bool {
	return g.Button != ButtonNone
}

// Sample is a raw pointer report from the windowing layer.
type Sample struct {
	// Position is the pointer location in canvas coordinates.
	Position event.Point

	// Buttons are the buttons currently held.
	Buttons Buttons

	// Wheel is the wheel movement in this sample (+1 up, -1 down).
	Wheel int

	// Modifiers are any keyboard modifiers held during the sample.
	Modifiers key.Modifier

	// Timestamp is when the sample was taken.
	Timestamp time.Time
}

// Normalizer converts pointer samples into gesture events.
// One button gesture is tracked at a time; other buttons pressed while a
// gesture is in progress are ignored until it ends.
type Normalizer struct {
	mu sync.Mutex

	gesture Gesture

	// last is the position of the previous sample.
	last event.Point

	// seen is false until the first sample arrives.
	seen bool
}

// NewNormalizer creates a new gesture normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Feed processes a sample and returns the events it produces, in order.
func (n *Normalizer) Feed(s Sample) []event.Event {
	n.mu.Lock()
	defer n.mu.Unlock()

	var out []event.Event
	moved := !n.seen || s.Position != n.last

	if s.Wheel != 0 {
		out = append(out, n.newEvent(event.MouseWheel, s, func(e *event.Event) {
			e.WheelDelta = s.Wheel
		}))
	}

	switch {
	case n.gesture.Active() && s.Buttons.Has(n.gesture.Button):
		if moved {
			_, drag, _ := n.gesture.Button.kinds()
			out = append(out, n.gestureEvent(drag, s))
			n.gesture.Current = s.Position
		}

	case n.gesture.Active():
		_, _, up := n.gesture.Button.kinds()
		out = append(out, n.gestureEvent(up, s))
		n.gesture = Gesture{}

	case s.Buttons.primary() != ButtonNone:
		b := s.Buttons.primary()
		n.gesture = Gesture{Button: b, Start: s.Position, Current: s.Position}
		down, _, _ := b.kinds()
		out = append(out, n.gestureEvent(down, s))

	case moved && n.seen && s.Wheel == 0:
		out = append(out, n.newEvent(event.MouseMove, s, func(e *event.Event) {
			e.LastPosition = n.last
		}))
	}

	n.last = s.Position
	n.seen = true
	return out
}

// Leave reports that the pointer left the canvas. A gesture in progress is
// finished with a release at the last known position.
func (n *Normalizer) Leave(mods key.Modifier, ts time.Time) []event.Event {
	n.mu.Lock()
	defer n.mu.Unlock()

	s := Sample{Position: n.last, Modifiers: mods, Timestamp: ts}
	var out []event.Event
	if n.gesture.Active() {
		_, _, up := n.gesture.Button.kinds()
		out = append(out, n.gestureEvent(up, s))
		n.gesture = Gesture{}
	}
	out = append(out, n.newEvent(event.MouseLeave, s, nil))
	n.seen = false
	return out
}

// Reset clears all normalizer state.
func (n *Normalizer) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.gesture = Gesture{}
	n.seen = false
	n.last = event.Point{}
}

// IsDragging returns true if a button gesture is in progress.
func (n *Normalizer) IsDragging() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.gesture.Active()
}

// Gesture returns the gesture in progress.
func (n *Normalizer) Gesture() Gesture {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.gesture
}

func (n *Normalizer) gestureEvent(kind event.Kind, s Sample) event.Event {
	return n.newEvent(kind, s, func(e *event.Event) {
		e.DownPosition = n.gesture.Start
		e.LastPosition = n.gesture.Current
	})
}

func (n *Normalizer) newEvent(kind event.Kind, s Sample, fill func(*event.Event)) event.Event {
	e := event.Event{
		Kind:         kind,
		Position:     s.Position,
		LastPosition: s.Position,
		DownPosition: s.Position,
		Modifiers:    s.Modifiers,
		Timestamp:    s.Timestamp,
	}
	if fill != nil {
		fill(&e)
	}
	return e
}
