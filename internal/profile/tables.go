package profile

import (
	"github.com/dshills/viewprofile/internal/input/key"
)

// TempEntry maps a base mode and a held modifier combination to the mode
// that applies while the combination is held.
type TempEntry struct {
	Base      Mode
	Modifiers key.Modifier
	Mode      Mode
}

// Redirect maps one trigger onto another. Used for both alternate and
// fallback tables.
type Redirect struct {
	From Trigger
	To   Trigger
}

type tempKey struct {
	mode Mode
	mods key.Modifier
}

// Tables holds the temporary-mode, alternate and fallback maps of one
// handler type. Tables are immutable once built.
type Tables struct {
	temp      map[tempKey]Mode
	alternate map[Trigger]Trigger
	fallback  map[Trigger]Trigger

	// Declaration order, for dumps and validation messages.
	tempOrder      []tempKey
	alternateOrder []Trigger
	fallbackOrder  []Trigger
}

var emptyTables = NewTables().Build()

// TempMode returns the temporary mode for base while exactly mods is held.
// A combination only matches an entry registered for that exact set; no
// subset matching is done.
func (t *Tables) TempMode(base Mode, mods key.Modifier) (Mode, bool) {
	if mods == key.ModNone {
		return "", false
	}
	mode, ok := t.temp[tempKey{base, mods}]
	return mode, ok
}

// TempModeKeys canonicalizes the held keys before looking up the temporary
// mode. A combination that cannot be canonicalized has no override.
func (t *Tables) TempModeKeys(base Mode, keys ...key.Key) (Mode, bool) {
	mods, err := key.Canonicalize(keys...)
	if err != nil {
		return "", false
	}
	return t.TempMode(base, mods)
}

// Alternate returns the trigger whose method replaces from, if any.
func (t *Tables) Alternate(from Trigger) (Trigger, bool) {
	to, ok := t.alternate[from]
	return to, ok
}

// Fallback returns the trigger to try when from declines, if any.
func (t *Tables) Fallback(from Trigger) (Trigger, bool) {
	to, ok := t.fallback[from]
	return to, ok
}

// TempModes returns the temporary-mode entries in declaration order.
func (t *Tables) TempModes() []TempEntry {
	out := make([]TempEntry, len(t.tempOrder))
	for i, k := range t.tempOrder {
		out[i] = TempEntry{Base: k.mode, Modifiers: k.mods, Mode: t.temp[k]}
	}
	return out
}

// Alternates returns the alternate entries in declaration order.
func (t *Tables) Alternates() []Redirect {
	return redirects(t.alternateOrder, t.alternate)
}

// Fallbacks returns the fallback entries in declaration order.
func (t *Tables) Fallbacks() []Redirect {
	return redirects(t.fallbackOrder, t.fallback)
}

// IsEmpty returns true if no entries are present.
func (t *Tables) IsEmpty() bool {
	return len(t.temp) == 0 && len(t.alternate) == 0 && len(t.fallback) == 0
}

func redirects(order []Trigger, m map[Trigger]Trigger) []Redirect {
	out := make([]Redirect, len(order))
	for i, from := range order {
		out[i] = Redirect{From: from, To: m[from]}
	}
	return out
}

// TablesBuilder assembles Tables. Registering a key twice replaces the
// earlier value and keeps its original position.
type TablesBuilder struct {
	t *Tables
}

// NewTables starts an empty set of tables.
func NewTables() *TablesBuilder {
	return &TablesBuilder{t: &Tables{
		temp:      make(map[tempKey]Mode),
		alternate: make(map[Trigger]Trigger),
		fallback:  make(map[Trigger]Trigger),
	}}
}

// Extend copies every entry of parent into the builder. Entries added
// afterwards override inherited ones.
func (b *TablesBuilder) Extend(parent *Tables) *TablesBuilder {
	if parent == nil {
		return b
	}
	for _, e := range parent.TempModes() {
		b.TempMode(e.Base, e.Modifiers, e.Mode)
	}
	for _, r := range parent.Alternates() {
		b.Alternate(r.From, r.To)
	}
	for _, r := range parent.Fallbacks() {
		b.Fallback(r.From, r.To)
	}
	return b
}

// TempMode registers (base, mods) -> mode.
func (b *TablesBuilder) TempMode(base Mode, mods key.Modifier, mode Mode) *TablesBuilder {
	k := tempKey{base, mods}
	if _, ok := b.t.temp[k]; !ok {
		b.t.tempOrder = append(b.t.tempOrder, k)
	}
	b.t.temp[k] = mode
	return b
}

// Alternate registers an alternate redirect.
func (b *TablesBuilder) Alternate(from, to Trigger) *TablesBuilder {
	if _, ok := b.t.alternate[from]; !ok {
		b.t.alternateOrder = append(b.t.alternateOrder, from)
	}
	b.t.alternate[from] = to
	return b
}

// Fallback registers a fallback redirect.
func (b *TablesBuilder) Fallback(from, to Trigger) *TablesBuilder {
	if _, ok := b.t.fallback[from]; !ok {
		b.t.fallbackOrder = append(b.t.fallbackOrder, from)
	}
	b.t.fallback[from] = to
	return b
}

// RemoveAlternate drops an alternate redirect, restoring the native method.
func (b *TablesBuilder) RemoveAlternate(from Trigger) *TablesBuilder {
	if _, ok := b.t.alternate[from]; !ok {
		return b
	}
	delete(b.t.alternate, from)
	b.t.alternateOrder = removeTrigger(b.t.alternateOrder, from)
	return b
}

// RemoveFallback drops a fallback redirect.
func (b *TablesBuilder) RemoveFallback(from Trigger) *TablesBuilder {
	if _, ok := b.t.fallback[from]; !ok {
		return b
	}
	delete(b.t.fallback, from)
	b.t.fallbackOrder = removeTrigger(b.t.fallbackOrder, from)
	return b
}

// RemoveTempMode drops the temporary mode registered for (base, mods).
func (b *TablesBuilder) RemoveTempMode(base Mode, mods key.Modifier) *TablesBuilder {
	k := tempKey{base, mods}
	if _, ok := b.t.temp[k]; !ok {
		return b
	}
	delete(b.t.temp, k)
	order := b.t.tempOrder[:0]
	for _, o := range b.t.tempOrder {
		if o != k {
			order = append(order, o)
		}
	}
	b.t.tempOrder = order
	return b
}

// Build freezes the tables. The builder must not be used afterwards.
func (b *TablesBuilder) Build() *Tables {
	t := b.t
	b.t = nil
	return t
}

func removeTrigger(order []Trigger, t Trigger) []Trigger {
	out := order[:0]
	for _, o := range order {
		if o != t {
			out = append(out, o)
		}
	}
	return out
}

// validate checks the tables against the handler type they belong to.
func (t *Tables) validate(ht *HandlerType, is *issues) {
	name := ht.Name()

	for _, e := range t.TempModes() {
		if e.Modifiers == key.ModNone {
			is.addf(name, "temporary mode %q for %q has no modifiers", e.Mode, e.Base)
		}
		if _, err := key.Normalize(e.Modifiers); err != nil {
			is.addf(name, "temporary mode for %q: %v", e.Base, err)
		}
		if !ht.HasMode(e.Base) {
			is.addf(name, "temporary mode base %q not in mode set", e.Base)
		}
		if !ht.HasMode(e.Mode) {
			is.addf(name, "temporary mode %q (from %q+%s) not in mode set", e.Mode, e.Base, e.Modifiers)
		}
	}

	for _, r := range t.Alternates() {
		if !ht.HasMode(r.From.Mode) {
			is.addf(name, "alternate %s: source mode not in mode set", r.From)
		}
		if !ht.HasMethod(r.To) {
			is.addf(name, "alternate %s -> %s: no such method", r.From, r.To)
		}
		if _, chained := t.alternate[r.To]; chained {
			is.addf(name, "alternate %s -> %s: target is itself redirected", r.From, r.To)
		}
	}

	for _, r := range t.Fallbacks() {
		if !ht.HasMode(r.From.Mode) {
			is.addf(name, "fallback %s: source mode not in mode set", r.From)
		}
		if !ht.HasMethod(r.To) {
			is.addf(name, "fallback %s -> %s: no such method", r.From, r.To)
		}
		if r.From == r.To {
			is.addf(name, "fallback %s points at itself", r.From)
		}
	}
}
