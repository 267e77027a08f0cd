package profile

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/input/key"
	"github.com/dshills/viewprofile/internal/logging"
)

// ModeChangeCallback is called when the effective mode changes.
type ModeChangeCallback func(from, to Mode)

// Profile is a live handler instance together with its mode state.
//
// The base mode persists until changed with SetMode. While a modifier
// combination with a temporary-mode entry is held, the temporary mode is in
// effect instead. A button press latches the effective mode until the
// release, so a gesture always ends in the mode it started in.
type Profile struct {
	htype   *HandlerType
	tables  *Tables
	panel   Panel
	handler Handler
	log     zerolog.Logger

	base Mode
	held key.Modifier
	temp Mode

	// latched is the mode held for the current button gesture.
	latched  Mode
	gestured bool

	callbacks []ModeChangeCallback
	destroyed bool
}

// NewProfile creates a handler of type ht for panel, using the tables cfg
// holds for ht.
func NewProfile(ctx context.Context, cfg *Config, ht *HandlerType, panel Panel) (*Profile, error) {
	if ht == nil || ht.newFn == nil {
		return nil, fmt.Errorf("%w: handler type cannot be instantiated", ErrNotFound)
	}

	p := &Profile{
		htype:  ht,
		tables: cfg.Tables(ht),
		panel:  panel,
		base:   ht.DefaultMode(),
		log:    logging.FromContext(ctx).With().Str("handler", ht.Name()).Logger(),
	}

	h, err := ht.newFn(p, panel)
	if err != nil {
		return nil, fmt.Errorf("create %s handler: %w", ht.Name(), err)
	}
	p.handler = h

	p.log.Debug().Str("mode", string(p.base)).Msg("profile created")
	return p, nil
}

// Type returns the handler type.
func (p *Profile) Type() *HandlerType {
	return p.htype
}

// Handler returns the handler instance.
func (p *Profile) Handler() Handler {
	return p.handler
}

// Panel returns the panel the profile was created for.
func (p *Profile) Panel() Panel {
	return p.panel
}

// Mode returns the persistent mode.
func (p *Profile) Mode() Mode {
	return p.base
}

// TempMode returns the temporary mode in effect, if any.
func (p *Profile) TempMode() (Mode, bool) {
	return p.temp, p.temp != ""
}

// EffectiveMode returns the mode events are dispatched in.
func (p *Profile) EffectiveMode() Mode {
	switch {
	case p.gestured:
		return p.latched
	case p.temp != "":
		return p.temp
	default:
		return p.base
	}
}

// Modifiers returns the modifier keys currently held.
func (p *Profile) Modifiers() key.Modifier {
	return p.held
}

// SetMode changes the persistent mode. Modes outside the handler's mode
// set are rejected with ErrUnknownMode.
func (p *Profile) SetMode(mode Mode) error {
	if !p.htype.HasMode(mode) {
		return fmt.Errorf("%w: %q for %s", ErrUnknownMode, mode, p.htype.Name())
	}
	if p.destroyed {
		return fmt.Errorf("set mode on destroyed %s profile", p.htype.Name())
	}

	p.update(func() {
		p.base = mode
		p.temp, _ = p.tables.TempMode(p.base, p.held)
	})
	return nil
}

// SetModifiers records the modifier keys currently held and enters or
// leaves a temporary mode accordingly. A combination that cannot be
// canonicalized counts as no override.
func (p *Profile) SetModifiers(mods key.Modifier) {
	p.update(func() {
		canon, err := key.Normalize(mods)
		if err != nil {
			p.log.Warn().Err(err).Msg("ignoring modifier state")
			p.held = key.ModNone
			p.temp = ""
			return
		}
		p.held = canon
		p.temp, _ = p.tables.TempMode(p.base, canon)
	})
}

// SetModifierKeys is SetModifiers for a list of held key identifiers.
func (p *Profile) SetModifierKeys(keys ...key.Key) {
	mods, err := key.Canonicalize(keys...)
	if err != nil {
		p.log.Warn().Err(err).Msg("ignoring modifier state")
		p.update(func() {
			p.held = key.ModNone
			p.temp = ""
		})
		return
	}
	p.SetModifiers(mods)
}

// OnModeChange registers a callback for effective-mode changes.
// Returns a function to unregister the callback.
func (p *Profile) OnModeChange(callback ModeChangeCallback) func() {
	p.callbacks = append(p.callbacks, callback)
	index := len(p.callbacks) - 1

	return func() {
		// Remove callback by setting to nil (preserves indices)
		if index < len(p.callbacks) {
			p.callbacks[index] = nil
		}
	}
}

// Destroy tears the profile down: the handler is destroyed, callbacks are
// dropped and the mode state is reset. Destroy is idempotent.
func (p *Profile) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	if p.handler != nil {
		p.handler.Destroy()
	}
	p.callbacks = nil
	p.base = p.htype.DefaultMode()
	p.held = key.ModNone
	p.temp = ""
	p.gestured = false
	p.latched = ""
	p.log.Debug().Msg("profile destroyed")
}

// Destroyed returns true once Destroy has run.
func (p *Profile) Destroyed() bool {
	return p.destroyed
}

// update applies fn and notifies callbacks if the effective mode changed.
func (p *Profile) update(fn func()) {
	from := p.EffectiveMode()
	fn()
	to := p.EffectiveMode()
	if from == to {
		return
	}

	p.log.Debug().Str("from", string(from)).Str("to", string(to)).Msg("mode changed")

	// Copy so callbacks may unregister themselves.
	callbacks := append([]ModeChangeCallback(nil), p.callbacks...)
	for _, cb := range callbacks {
		if cb != nil {
			cb(from, to)
		}
	}
}

// Dispatch routes one event to the handler.
//
// The event's modifier state is applied first. Then the trigger for the
// effective mode is redirected through the alternate table, or taken as is,
// and its method called. If it declines, the fallback entry for the same
// trigger is tried. Events nothing handles are dropped without error.
func (p *Profile) Dispatch(ctx context.Context, ev *event.Event) Result {
	if p.destroyed || ev == nil {
		return Result{}
	}

	p.SetModifiers(ev.Modifiers)

	if ev.Kind.IsDown() && !p.gestured {
		p.latched = p.EffectiveMode()
		p.gestured = true
	}

	req := Trigger{Mode: p.EffectiveMode(), Event: ev.Kind}

	var res Result
	if p.reserved(ev) {
		res = Result{Requested: req}
	} else {
		res = p.invoke(ctx, req, ev)
	}

	if ev.Kind.IsUp() && p.gestured {
		p.update(func() {
			p.gestured = false
			p.latched = ""
		})
	}

	p.log.Trace().
		Str("event", ev.String()).
		Str("requested", req.String()).
		Str("invoked", res.Invoked.String()).
		Str("outcome", res.Outcome.String()).
		Msg("dispatch")

	return res
}

// reserved reports whether ev must not reach the handler: character events
// are kept from temporary modes entered with Control or Alt, as those
// combinations belong to global shortcuts.
func (p *Profile) reserved(ev *event.Event) bool {
	if ev.Kind != event.Char || p.temp == "" || p.gestured {
		return false
	}
	return p.held.HasCtrl() || p.held.HasAlt()
}

func (p *Profile) invoke(ctx context.Context, req Trigger, ev *event.Event) Result {
	target, redirected := p.tables.Alternate(req)
	if !redirected {
		target = req
	}

	if handled, _ := p.htype.invoke(p.handler, target, ctx, ev); handled {
		return Result{Outcome: Handled, Requested: req, Invoked: target, Redirected: redirected}
	}

	if fb, ok := p.tables.Fallback(req); ok {
		if handled, _ := p.htype.invoke(p.handler, fb, ctx, ev); handled {
			return Result{Outcome: HandledByFallback, Requested: req, Invoked: fb}
		}
	}

	return Result{Requested: req}
}
