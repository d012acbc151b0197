// Package lifecycle implements the entity lifecycle event model for EntityKit.
//
// A Dispatcher wraps each persistence operation (insert, update, delete,
// load, validate) with ordered hook invocations and routes cancellation
// signals back to the persistence engine that fired the event.
//
// # Firing order
//
// For a given phase, listeners run on the caller's goroutine in this order:
//
//  1. Phase-token listeners, in registration order
//  2. Custom listeners whose SupportsEventType accepts the phase, in
//     registration order
//  3. The entity's own hook for the phase, if the entity implements it
//
// No phase returns control to the caller until every listener has completed.
// There is no background or deferred delivery: for "before" phases the
// listeners' cancellation decision gates the outcome of the operation.
//
// # Cancellation
//
// The cancelled flag on an Event is checked once, after all listeners for
// the phase have run. A later listener may clear a flag set by an earlier
// one; the last write wins. A listener error during a "before" phase forces
// cancellation regardless of the flag and surfaces as a *ListenerError.
//
// # Caller obligations
//
// The engine must call the matching FireBefore* before the physical
// operation, abort when it reports cancellation, and call FireAfter* only
// once the operation durably succeeded. Hooks must not trigger a flush of
// the owning persistence session; doing so is undefined behavior (the
// classic failure mode is unbounded recursion). Re-entrant firing is allowed
// as long as it does not re-enter the same in-flight flush.
//
// # Setup
//
// Construct one Dispatcher at datastore initialization and pass it by
// reference to everything that registers or fires events. Registration is
// configuration-time: register listeners and entity prototypes before
// concurrent traffic begins.
package lifecycle
