package profile

// Outcome is the result of dispatching one event.
type Outcome uint8

const (
	// Unhandled means no method took the event. It is dropped.
	Unhandled Outcome = iota
	// Handled means the primary (native or alternate) method took the event.
	Handled
	// HandledByFallback means the primary method declined and the fallback
	// method took the event.
	HandledByFallback
)

// String returns a string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case Handled:
		return "handled"
	case HandledByFallback:
		return "fallback"
	default:
		return "unhandled"
	}
}

// Result describes how an event was dispatched.
type Result struct {
	// Outcome is whether and how the event was handled.
	Outcome Outcome

	// Requested is the trigger in the effective mode.
	Requested Trigger

	// Invoked is the trigger whose method took the event. Zero when
	// unhandled.
	Invoked Trigger

	// Redirected is true if the alternate table replaced the requested
	// trigger.
	Redirected bool
}

// Handled returns true if any method took the event.
func (r Result) Handled() bool {
	return r.Outcome != Unhandled
}
