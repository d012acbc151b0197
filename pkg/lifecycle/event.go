package lifecycle

//go:generate go run github.com/dmarkham/enumer -type EventType -trimprefix EventType -transform kebab -output event_type.gen.go

// EventType identifies the lifecycle phase an Event describes.
//
// OnLoad and BeforeLoad are two names for the same phase (immediately before
// field population); there is no separate BeforeLoad value.
type EventType int

const (
	EventTypePreInsert EventType = iota
	EventTypePostInsert
	EventTypePreUpdate
	EventTypePostUpdate
	EventTypePreDelete
	EventTypePostDelete
	EventTypeOnLoad
	EventTypePostLoad
	EventTypeBeforeValidate
)

// Event describes one lifecycle occurrence. It is created by the dispatcher
// immediately before invoking the listeners for a phase and discarded after
// the phase completes; listeners must not retain it.
type Event struct {
	// Type is the phase being fired.
	Type EventType

	// Entity is the target of the operation. For load phases listeners may
	// mutate its fields in place; mutations are visible to the caller of the
	// load operation.
	Entity any

	// Properties is the ordered list of property names under validation.
	// It is non-nil only for BeforeValidate events fired with an explicit
	// property list.
	Properties []string

	cancelled bool
}

// Cancel requests that the pending operation be aborted. It has an effect
// only on "before" phases; on "after" phases the operation has already
// completed and the flag is ignored.
func (e *Event) Cancel() {
	e.cancelled = true
}

// SetCancelled overwrites the cancellation flag. A listener may use this to
// clear a cancellation requested by an earlier listener in the same phase;
// the flag is read once after all listeners ran, so the last write wins.
func (e *Event) SetCancelled(cancelled bool) {
	e.cancelled = cancelled
}

// Cancelled reports the current state of the cancellation flag.
func (e *Event) Cancelled() bool {
	return e.cancelled
}
