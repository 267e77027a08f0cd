// Package terminal translates tcell terminal events into input events.
//
// Terminals report keys as characters and never report modifier keys on
// their own, so a key press becomes a single Char event and modifier state
// only changes with the next key or mouse report. Mouse reports go through
// the gesture normalizer, which synthesizes drags and releases.
package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/input/key"
	"github.com/dshills/viewprofile/internal/input/mouse"
)

// Transform maps a screen cell to canvas coordinates.
type Transform func(x, y int) event.Point

// Identity maps cell (x, y) to the centre of the unit square at (x, y).
func Identity(x, y int) event.Point {
	return event.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// Source converts tcell events for one canvas.
type Source struct {
	norm      *mouse.Normalizer
	transform Transform
	held      mouse.Buttons
	mods      key.Modifier
}

// NewSource creates a Source. A nil transform means Identity.
func NewSource(transform Transform) *Source {
	if transform == nil {
		transform = Identity
	}
	return &Source{norm: mouse.NewNormalizer(), transform: transform}
}

// SetTransform replaces the cell transform, for example after a resize.
func (s *Source) SetTransform(transform Transform) {
	if transform == nil {
		transform = Identity
	}
	s.transform = transform
}

// Modifiers returns the modifier state of the last event.
func (s *Source) Modifiers() key.Modifier {
	return s.mods
}

// Translate converts ev into zero or more input events. Events that carry
// no input, such as resizes, produce none.
func (s *Source) Translate(ev tcell.Event) []event.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k, r, mods := ConvertKey(e)
		s.mods = mods
		if k == key.KeyNone {
			return nil
		}
		return []event.Event{{
			Kind:      event.Char,
			Key:       k,
			Rune:      r,
			Modifiers: mods,
			Timestamp: e.When(),
		}}

	case *tcell.EventMouse:
		return s.mouse(e)

	case *tcell.EventFocus:
		if e.Focused {
			return nil
		}
		s.held = 0
		return s.norm.Leave(s.mods, time.Now())

	default:
		return nil
	}
}

func (s *Source) mouse(e *tcell.EventMouse) []event.Event {
	x, y := e.Position()
	mask := e.Buttons()
	s.mods = ConvertMod(e.Modifiers())

	sample := mouse.Sample{
		Position:  s.transform(x, y),
		Wheel:     ConvertWheel(mask),
		Modifiers: s.mods,
		Timestamp: e.When(),
	}
	if sample.Wheel != 0 {
		// Wheel reports carry no button state.
		sample.Buttons = s.held
	} else {
		s.held = ConvertButtons(mask)
		sample.Buttons = s.held
	}
	return s.norm.Feed(sample)
}

// Reset forgets any gesture in progress.
func (s *Source) Reset() {
	s.norm.Reset()
	s.held = 0
	s.mods = key.ModNone
}

// ConvertMod converts a tcell modifier mask.
func ConvertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModMeta
	}
	return result
}

// ConvertButtons converts the button bits of a tcell mask.
func ConvertButtons(b tcell.ButtonMask) mouse.Buttons {
	var result mouse.Buttons
	if b&tcell.ButtonPrimary != 0 {
		result |= mouse.HeldLeft
	}
	if b&tcell.ButtonMiddle != 0 {
		result |= mouse.HeldMiddle
	}
	if b&tcell.ButtonSecondary != 0 {
		result |= mouse.HeldRight
	}
	return result
}

// ConvertWheel returns +1 for wheel up, -1 for wheel down and 0 otherwise.
func ConvertWheel(b tcell.ButtonMask) int {
	switch {
	case b&tcell.WheelUp != 0:
		return 1
	case b&tcell.WheelDown != 0:
		return -1
	default:
		return 0
	}
}

// ConvertKey converts a tcell key event into a key, its rune and the
// modifiers held. Control-letter keys are reported as the letter with
// ModCtrl set. Keys with no equivalent return KeyNone.
func ConvertKey(e *tcell.EventKey) (key.Key, rune, key.Modifier) {
	mods := ConvertMod(e.Modifiers())
	k := e.Key()

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ && !isNamedControl(k) {
		return key.KeyRune, 'a' + rune(k-tcell.KeyCtrlA), mods | key.ModCtrl
	}

	switch k {
	case tcell.KeyRune:
		if e.Rune() == ' ' {
			return key.KeySpace, ' ', mods
		}
		return key.KeyRune, e.Rune(), mods
	case tcell.KeyEscape:
		return key.KeyEscape, 0, mods
	case tcell.KeyEnter:
		return key.KeyEnter, 0, mods
	case tcell.KeyTab:
		return key.KeyTab, 0, mods
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace, 0, mods
	case tcell.KeyDelete:
		return key.KeyDelete, 0, mods
	case tcell.KeyHome:
		return key.KeyHome, 0, mods
	case tcell.KeyEnd:
		return key.KeyEnd, 0, mods
	case tcell.KeyPgUp:
		return key.KeyPageUp, 0, mods
	case tcell.KeyPgDn:
		return key.KeyPageDown, 0, mods
	case tcell.KeyUp:
		return key.KeyUp, 0, mods
	case tcell.KeyDown:
		return key.KeyDown, 0, mods
	case tcell.KeyLeft:
		return key.KeyLeft, 0, mods
	case tcell.KeyRight:
		return key.KeyRight, 0, mods
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return key.KeyF1 + key.Key(k-tcell.KeyF1), 0, mods
	}
	return key.KeyNone, 0, mods
}

// isNamedControl reports the control codes tcell also names as keys:
// Tab (Ctrl-I), Enter (Ctrl-M) and Backspace (Ctrl-H).
func isNamedControl(k tcell.Key) bool {
	return k == tcell.KeyTab || k == tcell.KeyEnter || k == tcell.KeyBackspace
}
