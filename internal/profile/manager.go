package profile

import (
	"context"
	"fmt"

	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/logging"
)

// ProfileChangeCallback is called after the active profile changes.
type ProfileChangeCallback func(from, to string)

// Manager owns the active profile of one view panel. It resolves profile
// names through the mode table, tears the old handler down on every switch
// and forwards input events to the active profile.
type Manager struct {
	cfg   *Config
	panel Panel

	name    string
	current *Profile

	callbacks []ProfileChangeCallback
}

// NewManager creates a manager for panel. No profile is active until
// Activate or ActivateDefault is called.
func NewManager(cfg *Config, panel Panel) *Manager {
	return &Manager{cfg: cfg, panel: panel}
}

// Config returns the configuration the manager resolves against.
func (m *Manager) Config() *Config {
	return m.cfg
}

// Panel returns the managed panel.
func (m *Manager) Panel() Panel {
	return m.panel
}

// Available returns the profile names the panel's view type supports.
func (m *Manager) Available() []string {
	return m.cfg.Modes().Profiles(m.panel.ViewType())
}

// Name returns the active profile name, or "" if none.
func (m *Manager) Name() string {
	return m.name
}

// Current returns the active profile, or nil.
func (m *Manager) Current() *Profile {
	return m.current
}

// Activate switches the panel to the named profile. The previous profile is
// destroyed only once the new one has been created, so a failed switch
// leaves the old profile active. Activating the active profile is a no-op.
func (m *Manager) Activate(ctx context.Context, name string) error {
	if m.current != nil && m.name == name {
		return nil
	}

	ctx = logging.WithView(ctx, m.panel.ViewType().String())
	log := logging.FromContext(ctx)

	ht, err := m.cfg.Resolve(m.panel.ViewType(), name)
	if err != nil {
		return err
	}

	next, err := NewProfile(ctx, m.cfg, ht, m.panel)
	if err != nil {
		return fmt.Errorf("activate %q: %w", name, err)
	}

	from := m.name
	if m.current != nil {
		m.current.Destroy()
	}
	m.current = next
	m.name = name

	log.Debug().
		Str("from", from).
		Str("to", name).
		Str("handler", ht.Name()).
		Msg("profile changed")

	callbacks := append([]ProfileChangeCallback(nil), m.callbacks...)
	for _, cb := range callbacks {
		if cb != nil {
			cb(from, name)
		}
	}
	return nil
}

// ActivateDefault activates the first profile declared for the panel's
// view type.
func (m *Manager) ActivateDefault(ctx context.Context) error {
	name, ok := m.cfg.Modes().Default(m.panel.ViewType())
	if !ok {
		return fmt.Errorf("%w: no profiles for %s view", ErrNotFound, m.panel.ViewType())
	}
	return m.Activate(ctx, name)
}

// SetMode changes the persistent mode of the active profile.
func (m *Manager) SetMode(mode Mode) error {
	if m.current == nil {
		return fmt.Errorf("%w: no active profile", ErrNotFound)
	}
	return m.current.SetMode(mode)
}

// Dispatch forwards ev to the active profile. Without an active profile
// every event is unhandled.
func (m *Manager) Dispatch(ctx context.Context, ev *event.Event) Result {
	if m.current == nil {
		return Result{}
	}
	return m.current.Dispatch(ctx, ev)
}

// OnProfileChange registers a callback for profile switches.
// Returns a function to unregister the callback.
func (m *Manager) OnProfileChange(callback ProfileChangeCallback) func() {
	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}

// Close destroys the active profile. The manager may be reactivated later.
func (m *Manager) Close() {
	if m.current != nil {
		m.current.Destroy()
	}
	m.current = nil
	m.name = ""
}
