package key

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidModifier is returned when a modifier set cannot be canonicalized,
// because it names a key that is not a modifier or carries unknown bits.
var ErrInvalidModifier = errors.New("invalid modifier combination")

// Modifier represents a set of keyboard modifier keys.
type Modifier uint8

// ModNone indicates no modifiers.
const ModNone Modifier = 0

const (
	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// modAll is the union of every known modifier bit.
const modAll = ModShift | ModCtrl | ModAlt | ModMeta

// modifierKeys lists modifier bits in ascending Key order.
var modifierKeys = [...]struct {
	key Key
	mod Modifier
}{
	{KeyShift, ModShift},
	{KeyCtrl, ModCtrl},
	{KeyAlt, ModAlt},
	{KeyMeta, ModMeta},
}

// ModifierOf returns the modifier bit for a modifier key, or ModNone.
func ModifierOf(k Key) Modifier {
	for _, mk := range modifierKeys {
		if mk.key == k {
			return mk.mod
		}
	}
	return ModNone
}

// Canonicalize builds the canonical modifier set holding the given keys.
// Duplicate keys collapse. Any key that is not a modifier key makes the
// whole combination invalid.
func Canonicalize(keys ...Key) (Modifier, error) {
	var m Modifier
	for _, k := range keys {
		mod := ModifierOf(k)
		if mod == ModNone {
			return ModNone, fmt.Errorf("%w: %s is not a modifier key", ErrInvalidModifier, k)
		}
		m |= mod
	}
	return m, nil
}

// Normalize validates a raw modifier mask.
// Masks carrying bits outside the known modifiers are rejected.
func Normalize(m Modifier) (Modifier, error) {
	if m&^modAll != 0 {
		return ModNone, fmt.Errorf("%w: unknown bits %#x", ErrInvalidModifier, uint8(m&^modAll))
	}
	return m, nil
}

// Keys returns the modifier keys in the set, sorted ascending by Key.
func (m Modifier) Keys() []Key {
	var keys []Key
	for _, mk := range modifierKeys {
		if m&mk.mod != 0 {
			keys = append(keys, mk.key)
		}
	}
	return keys
}

// Len returns the number of modifiers in the set.
func (m Modifier) Len() int {
	n := 0
	for _, mk := range modifierKeys {
		if m&mk.mod != 0 {
			n++
		}
	}
	return n
}

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasMeta returns true if Meta is pressed.
func (m Modifier) HasMeta() bool {
	return m.Has(ModMeta)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a human-readable representation like "Ctrl+Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasMeta() {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

// modifierNameMap maps modifier names (lowercase) to Modifier values.
var modifierNameMap = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"c":       ModCtrl,
	"alt":     ModAlt,
	"a":       ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"shift":   ModShift,
	"s":       ModShift,
	"meta":    ModMeta,
	"m":       ModMeta,
	"cmd":     ModMeta,
	"command": ModMeta,
	"win":     ModMeta,
	"super":   ModMeta,
}

// ModifierFromName returns the Modifier for a given name (case-insensitive).
// Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	if m, ok := modifierNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m
	}
	return ModNone
}

// ParseModifiers parses a modifier string like "Ctrl+Alt" or "C-A".
// An empty string is the empty set. Unknown names are an error.
func ParseModifiers(s string) (Modifier, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ModNone, nil
	}

	var parts []string
	switch {
	case strings.Contains(s, "+"):
		parts = strings.Split(s, "+")
	case strings.Contains(s, "-"):
		parts = strings.Split(s, "-")
	default:
		parts = []string{s}
	}

	var result Modifier
	for _, part := range parts {
		mod := ModifierFromName(part)
		if mod == ModNone {
			return ModNone, fmt.Errorf("%w: unknown modifier %q", ErrInvalidModifier, strings.TrimSpace(part))
		}
		result = result.With(mod)
	}
	return result, nil
}

// ParseModifierList parses a list of modifier names, as found in
// configuration files, into one canonical set.
func ParseModifierList(names []string) (Modifier, error) {
	var result Modifier
	for _, name := range names {
		mod, err := ParseModifiers(name)
		if err != nil {
			return ModNone, err
		}
		result |= mod
	}
	return result, nil
}
