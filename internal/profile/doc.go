// Package profile implements interaction profiles: the tables and the
// dispatcher that decide which handler method runs for an input event on a
// view panel.
//
// # Tables
//
// A ModeTable maps a (ViewType, profile name) pair to a HandlerType. Each
// HandlerType owns a fixed set of modes and a static method table mapping a
// Trigger, the (Mode, event.Kind) pair, to a method. Alongside it, Tables
// hold three maps for the handler type:
//
//   - temporary modes: (base mode, held modifiers) -> mode, exact match only
//   - alternates: Trigger -> Trigger, consulted before the native method
//   - fallbacks: Trigger -> Trigger, consulted when the handler declines
//
// Redirects resolve in exactly one hop. Validation forbids alternate chains
// and requires every redirect target to be a native method, so a built
// Config can never fail at dispatch time.
//
// # Dispatch
//
// A Manager owns the active Profile of one panel. Profile.Dispatch computes
// the effective mode (base mode, or the temporary mode for the held
// modifiers), applies an alternate if present, calls the method and, if it
// declines, tries the fallback. An event nothing handles is dropped. The
// effective mode at a button press stays in force until the matching release.
//
// All types here are built once at start-up and are read-only afterwards,
// except Profile and Manager, which hold per-panel state and must only be used
// from the goroutine that runs the panel's event loop.
package profile
