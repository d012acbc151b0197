package lifecycle

import (
	"errors"
	"fmt"
)

// Listener is a callable bound to a phase token. A non-nil error from a
// "before" phase listener aborts the pending operation; see ListenerError.
type Listener func(ev *Event) error

// CustomListener is the capability pair for listeners that decide per event
// type whether they want to be offered the event. For every fired event the
// dispatcher offers it to each registered custom listener whose
// SupportsEventType returns true, in registration order, after the
// phase-token listeners for that phase.
type CustomListener interface {
	SupportsEventType(t EventType) bool
	OnPersistenceEvent(ev *Event) error
}

// ErrUnknownToken is returned by RegisterListener for a token outside the
// recognized set.
var ErrUnknownToken = errors.New("lifecycle: unknown phase token")

// ListenerError reports listener failures during a phase. Every listener for
// the phase runs before the error is surfaced; all failures are collected.
//
// For a "before" phase a ListenerError implies the operation was aborted.
// For an "after" phase it surfaces to the caller but the already-completed
// physical operation stands.
type ListenerError struct {
	Phase EventType
	Errs  []error
}

func (e *ListenerError) Error() string {
	if len(e.Errs) == 1 {
		return fmt.Sprintf("lifecycle: %s listener: %v", e.Phase, e.Errs[0])
	}
	return fmt.Sprintf("lifecycle: %s listeners: %d failed: %v", e.Phase, len(e.Errs), errors.Join(e.Errs...))
}

func (e *ListenerError) Unwrap() []error {
	return e.Errs
}

// listenerError wraps errs into a *ListenerError, or returns nil when there
// is nothing to report.
func listenerError(phase EventType, errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return &ListenerError{Phase: phase, Errs: errs}
}
