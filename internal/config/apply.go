package config

import (
	"context"
	"fmt"

	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/input/key"
	"github.com/dshills/viewprofile/internal/logging"
	"github.com/dshills/viewprofile/internal/profile"
)

// Apply returns base with the table overrides of s applied. Entries naming
// unknown handler types are reported as *ValidationError; the resulting
// configuration is then validated as a whole and a *profile.ConfigError is
// returned if the overrides break it. Without overrides base is returned.
func Apply(ctx context.Context, base *profile.Config, s *Settings) (*profile.Config, error) {
	n := len(s.TempModes) + len(s.Alternates) + len(s.Fallbacks)
	if n == 0 {
		return base, nil
	}

	b := profile.BuilderFrom(base)
	var errs ValidationErrors

	lookup := func(path, name string) (*profile.HandlerType, bool) {
		ht, ok := b.HandlerType(name)
		if !ok {
			errs.add(path, ErrCodeUnknownHandler, name, "no such handler type")
		}
		return ht, ok
	}

	for i, e := range s.TempModes {
		ht, ok := lookup(fmt.Sprintf("temp_mode[%d].handler", i), e.Handler)
		if !ok {
			continue
		}
		mods, err := key.ParseModifiers(e.Modifiers)
		if err != nil {
			errs.add(fmt.Sprintf("temp_mode[%d].modifiers", i), ErrCodeInvalidEnum, e.Modifiers, "%v", err)
			continue
		}
		base := profile.Mode(e.Mode)
		if e.Remove {
			b.Edit(ht, func(tb *profile.TablesBuilder) { tb.RemoveTempMode(base, mods) })
			continue
		}
		b.Edit(ht, func(tb *profile.TablesBuilder) {
			tb.TempMode(base, mods, profile.Mode(e.Target))
		})
	}

	applyRedirects(b, &errs, lookup, "alternate", s.Alternates,
		(*profile.TablesBuilder).Alternate, (*profile.TablesBuilder).RemoveAlternate)
	applyRedirects(b, &errs, lookup, "fallback", s.Fallbacks,
		(*profile.TablesBuilder).Fallback, (*profile.TablesBuilder).RemoveFallback)

	if err := errs.err(); err != nil {
		return nil, err
	}

	cfg, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("apply overrides: %w", err)
	}
	logging.FromContext(ctx).Debug().Int("overrides", n).Msg("interaction overrides applied")
	return cfg, nil
}

func applyRedirects(
	b *profile.Builder,
	errs *ValidationErrors,
	lookup func(path, name string) (*profile.HandlerType, bool),
	section string,
	entries []RedirectEntry,
	set func(*profile.TablesBuilder, profile.Trigger, profile.Trigger) *profile.TablesBuilder,
	remove func(*profile.TablesBuilder, profile.Trigger) *profile.TablesBuilder,
) {
	for i, e := range entries {
		p := fmt.Sprintf("%s[%d]", section, i)
		ht, ok := lookup(p+".handler", e.Handler)
		if !ok {
			continue
		}
		from, ok := trigger(errs, p+".event", e.Mode, e.Event)
		if !ok {
			continue
		}
		if e.Remove {
			b.Edit(ht, func(tb *profile.TablesBuilder) { remove(tb, from) })
			continue
		}
		to, ok := trigger(errs, p+".target_event", e.TargetMode, e.TargetEvent)
		if !ok {
			continue
		}
		b.Edit(ht, func(tb *profile.TablesBuilder) { set(tb, from, to) })
	}
}

func trigger(errs *ValidationErrors, path, mode, kind string) (profile.Trigger, bool) {
	k, err := event.ParseKind(kind)
	if err != nil {
		errs.add(path, ErrCodeInvalidEnum, kind, "unknown event name")
		return profile.Trigger{}, false
	}
	return profile.On(profile.Mode(mode), k), true
}
