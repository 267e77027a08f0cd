package profile

import (
	"context"
	"slices"
	"sort"

	"github.com/dshills/viewprofile/internal/input/event"
)

// Handler is one handler instance, created for one panel.
type Handler interface {
	// Destroy releases anything the handler registered on its panel.
	// It is called exactly once, when the owning profile is torn down.
	Destroy()
}

// Controller is the part of a Profile visible to its handler.
// Handlers use it to read or switch their own mode, for example to leave a
// drafting mode once a gesture completes.
type Controller interface {
	// Mode returns the persistent (base) mode.
	Mode() Mode

	// EffectiveMode returns the mode events are currently dispatched in.
	EffectiveMode() Mode

	// SetMode changes the persistent mode.
	SetMode(mode Mode) error
}

// Method handles one Trigger. It reports whether the event was handled;
// returning false lets the fallback table try another method.
type Method[H Handler] func(h H, ctx context.Context, ev *event.Event) bool

// Methods is the static method table of a handler type.
type Methods[H Handler] map[Trigger]Method[H]

// Lift adapts a parent handler's method table to a derived handler that
// embeds or wraps the parent, so derived types inherit the parent's methods.
func Lift[P, C Handler](parent Methods[P], up func(C) P) Methods[C] {
	out := make(Methods[C], len(parent))
	for t, m := range parent {
		out[t] = func(h C, ctx context.Context, ev *event.Event) bool {
			return m(up(h), ctx, ev)
		}
	}
	return out
}

// Merge returns a copy of base with every entry of over added, replacing
// entries with the same Trigger.
func Merge[H Handler](base, over Methods[H]) Methods[H] {
	out := make(Methods[H], len(base)+len(over))
	for t, m := range base {
		out[t] = m
	}
	for t, m := range over {
		out[t] = m
	}
	return out
}

// Spec describes a handler type to Define.
type Spec[H Handler] struct {
	// Name identifies the handler type in tables, logs and configuration.
	Name string

	// Modes is the handler's mode set, in display order.
	Modes []Mode

	// Default is the initial mode of new instances.
	Default Mode

	// New creates an instance for a panel.
	New func(ctl Controller, panel Panel) (H, error)

	// Methods is the native method table.
	Methods Methods[H]
}

// HandlerType is a validated, type-erased handler definition.
type HandlerType struct {
	name        string
	modes       []Mode
	defaultMode Mode
	triggers    map[Trigger]struct{}

	newFn  func(ctl Controller, panel Panel) (Handler, error)
	invoke func(h Handler, t Trigger, ctx context.Context, ev *event.Event) (handled, found bool)
}

// Define creates a HandlerType from a typed specification.
// The method table is copied; later changes to spec.Methods have no effect.
func Define[H Handler](spec Spec[H]) *HandlerType {
	methods := make(Methods[H], len(spec.Methods))
	triggers := make(map[Trigger]struct{}, len(spec.Methods))
	for t, m := range spec.Methods {
		if m == nil {
			continue
		}
		methods[t] = m
		triggers[t] = struct{}{}
	}

	ht := &HandlerType{
		name:        spec.Name,
		modes:       slices.Clone(spec.Modes),
		defaultMode: spec.Default,
		triggers:    triggers,
		invoke: func(h Handler, t Trigger, ctx context.Context, ev *event.Event) (bool, bool) {
			m, ok := methods[t]
			if !ok {
				return false, false
			}
			typed, ok := h.(H)
			if !ok {
				return false, false
			}
			return m(typed, ctx, ev), true
		},
	}

	if spec.New != nil {
		newFn := spec.New
		ht.newFn = func(ctl Controller, panel Panel) (Handler, error) {
			return newFn(ctl, panel)
		}
	}

	return ht
}

// Name returns the handler type name.
func (ht *HandlerType) Name() string {
	return ht.name
}

// String implements fmt.Stringer.
func (ht *HandlerType) String() string {
	return ht.name
}

// Modes returns the handler's mode set.
func (ht *HandlerType) Modes() []Mode {
	return slices.Clone(ht.modes)
}

// DefaultMode returns the initial mode of new instances.
func (ht *HandlerType) DefaultMode() Mode {
	return ht.defaultMode
}

// HasMode returns true if mode belongs to the handler's mode set.
func (ht *HandlerType) HasMode(mode Mode) bool {
	return slices.Contains(ht.modes, mode)
}

// HasMethod returns true if the handler natively implements t.
func (ht *HandlerType) HasMethod(t Trigger) bool {
	_, ok := ht.triggers[t]
	return ok
}

// Triggers returns the native triggers sorted by mode and event.
func (ht *HandlerType) Triggers() []Trigger {
	out := make([]Trigger, 0, len(ht.triggers))
	for t := range ht.triggers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Mode != out[j].Mode {
			return out[i].Mode < out[j].Mode
		}
		return out[i].Event < out[j].Event
	})
	return out
}

// validate reports problems with the handler definition itself.
func (ht *HandlerType) validate(is *issues) {
	if ht.name == "" {
		is.addf("", "handler type without a name")
	}
	if ht.newFn == nil {
		is.addf(ht.name, "no constructor")
	}
	if len(ht.modes) == 0 {
		is.addf(ht.name, "empty mode set")
	}
	seen := make(map[Mode]bool, len(ht.modes))
	for _, m := range ht.modes {
		if seen[m] {
			is.addf(ht.name, "duplicate mode %q", m)
		}
		seen[m] = true
	}
	if !ht.HasMode(ht.defaultMode) {
		is.addf(ht.name, "default mode %q not in mode set", ht.defaultMode)
	}
	for _, t := range ht.Triggers() {
		if !ht.HasMode(t.Mode) {
			is.addf(ht.name, "method %s uses mode outside the mode set", t)
		}
	}
}
