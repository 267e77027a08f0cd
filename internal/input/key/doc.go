// Package key provides key identifiers and modifier sets for the input system.
//
// This package defines the fundamental keyboard types:
//
//   - Key: Identifies a keyboard key (modifier keys, special keys or runes)
//   - Modifier: A canonical set of held modifier keys (Ctrl, Alt, Shift, Meta)
//
// # Canonical Modifier Sets
//
// A Modifier is a bitmask, so two sets holding the same keys are always
// equal regardless of the order the keys were pressed in, and can be used
// directly as map keys. Canonicalize builds a set from key identifiers and
// rejects anything that is not a modifier key; Keys returns the members in
// ascending key order, so that
//
//	m, _ := Canonicalize(keys...)
//	n, _ := Canonicalize(m.Keys()...)
//
// always yields n == m.
//
// # Modifier Specifications
//
// Modifier sets can be written as "Ctrl+Shift", "control+alt", "C-S" or
// a single name such as "shift". ParseModifiers reports unknown names.
package key
