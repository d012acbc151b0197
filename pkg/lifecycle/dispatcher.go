package lifecycle

import (
	"fmt"
	"sync"
	"time"
)

// Dispatcher owns the ordered invocation of lifecycle hooks around entity
// persistence operations. One instance is created at datastore
// initialization and shared by everything that registers or fires events.
//
// Registration is guarded by a mutex and firing takes a read lock, so
// registering while traffic is flowing is safe, but it is intended as a
// configuration-time activity. Firing holds no entity-scoped state; multiple
// entities may be processed concurrently against one dispatcher.
type Dispatcher struct {
	mu     sync.RWMutex
	phases map[EventType][]Listener
	// parked holds registrations under recognized tokens that have no
	// dispatch phase here (session-level moments such as flush or evict).
	parked     map[Token][]Listener
	custom     []CustomListener
	timestamps bool
	now        func() time.Time
}

// Option configures a Dispatcher at construction.
type Option func(*Dispatcher)

// WithTimestamps sets the dispatcher-wide default for automatic created-at/
// updated-at stamping. Entities implementing Timestamper override it.
func WithTimestamps(enabled bool) Option {
	return func(d *Dispatcher) { d.timestamps = enabled }
}

// WithClock overrides the time source used for automatic timestamping.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// NewDispatcher creates a dispatcher with automatic timestamping enabled.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		phases:     make(map[EventType][]Listener),
		parked:     make(map[Token][]Listener),
		timestamps: true,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RegisterListener adds a listener under a phase token, effective for all
// subsequently fired events of that phase. Multiple listeners for one phase
// all fire, in registration order; listeners are not deduplicated by
// identity. Unknown tokens are rejected with ErrUnknownToken.
func (d *Dispatcher) RegisterListener(token Token, l Listener) error {
	if !token.Recognized() {
		return fmt.Errorf("%w: %q", ErrUnknownToken, token)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if phase, ok := token.Phase(); ok {
		d.phases[phase] = append(d.phases[phase], l)
		return nil
	}
	d.parked[token] = append(d.parked[token], l)
	return nil
}

// RegisterCustomListener adds a polymorphic listener. For every fired event
// the dispatcher offers it to each custom listener whose SupportsEventType
// accepts the event's type, in registration order, after the phase-token
// listeners for that phase.
func (d *Dispatcher) RegisterCustomListener(l CustomListener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.custom = append(d.custom, l)
}

// RegisterEntity describes an entity prototype so that configuration errors
// (such as implementing both OnLoad and BeforeLoad) surface at setup rather
// than at fire time. Engines should register each entity type they manage.
func (d *Dispatcher) RegisterEntity(prototype any) error {
	_, err := Describe(prototype)
	return err
}

// FireBeforeInsert fires the PreInsert phase. When automatic timestamping
// applies it first sets the entity's created-at field (unless already set)
// and its updated-at field. The returned flag reports whether the insert
// must be aborted; a non-nil error implies cancellation.
func (d *Dispatcher) FireBeforeInsert(entity any) (cancelled bool, err error) {
	if err := d.applyTimestamps(entity, true); err != nil {
		return false, err
	}
	return d.fireBefore(EventTypePreInsert, entity, nil, beforeInsertHook(entity))
}

// FireAfterInsert fires the PostInsert phase. It must be called only after
// the insert durably succeeded; listener errors surface to the caller but do
// not roll back the completed insert.
func (d *Dispatcher) FireAfterInsert(entity any) error {
	return d.fireAfter(EventTypePostInsert, entity, afterInsertHook(entity))
}

// FireBeforeUpdate fires the PreUpdate phase, stamping updated-at first when
// automatic timestamping applies. Callers must not fire it while another
// flush of the same session is in progress for the same entity.
func (d *Dispatcher) FireBeforeUpdate(entity any) (cancelled bool, err error) {
	if err := d.applyTimestamps(entity, false); err != nil {
		return false, err
	}
	return d.fireBefore(EventTypePreUpdate, entity, nil, beforeUpdateHook(entity))
}

// FireAfterUpdate fires the PostUpdate phase.
func (d *Dispatcher) FireAfterUpdate(entity any) error {
	return d.fireAfter(EventTypePostUpdate, entity, afterUpdateHook(entity))
}

// FireBeforeDelete fires the PreDelete phase.
func (d *Dispatcher) FireBeforeDelete(entity any) (cancelled bool, err error) {
	return d.fireBefore(EventTypePreDelete, entity, nil, beforeDeleteHook(entity))
}

// FireAfterDelete fires the PostDelete phase.
func (d *Dispatcher) FireAfterDelete(entity any) error {
	return d.fireAfter(EventTypePostDelete, entity, afterDeleteHook(entity))
}

// FireBeforeValidate fires the BeforeValidate phase. properties is the
// ordered list of property names under validation; nil means the validation
// was implicit (triggered by save or display) rather than property-scoped.
//
// Entity-level slot resolution: with an explicit list the property-list slot
// is preferred, falling back to the no-argument slot; with no list the
// no-argument slot is preferred, falling back to the property-list slot
// invoked with a nil list. At most one slot runs per pass.
func (d *Dispatcher) FireBeforeValidate(entity any, properties []string) (cancelled bool, err error) {
	return d.fireBefore(EventTypeBeforeValidate, entity, properties, validateHook(entity, properties))
}

// FireOnLoad fires the OnLoad phase, immediately before the entity's fields
// are populated from storage.
func (d *Dispatcher) FireOnLoad(entity any) error {
	return d.fireAfter(EventTypeOnLoad, entity, loadHook(entity))
}

// FireAfterLoad fires the PostLoad phase, immediately after field
// population. Listeners may mutate the entity in place; the phase completes
// before the load operation returns, so mutations are visible to its caller.
func (d *Dispatcher) FireAfterLoad(entity any) error {
	return d.fireAfter(EventTypePostLoad, entity, afterLoadHook(entity))
}

// fireBefore runs a gating phase. Every listener runs even when an earlier
// one failed; the cancellation flag is read once at the end, so a later
// listener can clear a flag set by an earlier one. Any listener error forces
// cancellation and surfaces as a *ListenerError.
func (d *Dispatcher) fireBefore(phase EventType, entity any, properties []string, hook func(*Event) error) (bool, error) {
	ev := &Event{Type: phase, Entity: entity, Properties: properties}
	errs := d.invoke(ev, hook)
	err := listenerError(phase, errs)
	return ev.Cancelled() || err != nil, err
}

// fireAfter runs a non-gating phase; cancellation flags are ignored.
func (d *Dispatcher) fireAfter(phase EventType, entity any, hook func(*Event) error) error {
	ev := &Event{Type: phase, Entity: entity}
	return listenerError(phase, d.invoke(ev, hook))
}

// invoke runs the listeners for ev's phase in order: phase-token listeners,
// custom listeners, then the entity hook. The registration table is copied
// under a brief read lock so listeners run without holding it.
func (d *Dispatcher) invoke(ev *Event, hook func(*Event) error) []error {
	d.mu.RLock()
	listeners := make([]Listener, len(d.phases[ev.Type]))
	copy(listeners, d.phases[ev.Type])
	custom := make([]CustomListener, len(d.custom))
	copy(custom, d.custom)
	d.mu.RUnlock()

	var errs []error
	for _, l := range listeners {
		if err := l(ev); err != nil {
			errs = append(errs, err)
		}
	}
	for _, c := range custom {
		if !c.SupportsEventType(ev.Type) {
			continue
		}
		if err := c.OnPersistenceEvent(ev); err != nil {
			errs = append(errs, err)
		}
	}
	if hook != nil {
		if err := hook(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// applyTimestamps stamps the entity's timestamp fields ahead of the
// PreInsert or PreUpdate phase. Disabled timestamping skips the fields
// entirely without affecting the rest of the phase.
func (d *Dispatcher) applyTimestamps(entity any, insert bool) error {
	enabled := d.timestamps
	if ts, ok := entity.(Timestamper); ok {
		enabled = ts.AutoTimestamps()
	}
	if !enabled {
		return nil
	}

	meta, err := Describe(entity)
	if err != nil {
		return err
	}

	now := d.now()
	if insert {
		meta.stampCreated(entity, now)
	}
	meta.stampUpdated(entity, now)
	return nil
}

func beforeInsertHook(entity any) func(*Event) error {
	if h, ok := entity.(BeforeInserter); ok {
		return h.BeforeInsert
	}
	return nil
}

func afterInsertHook(entity any) func(*Event) error {
	if h, ok := entity.(AfterInserter); ok {
		return h.AfterInsert
	}
	return nil
}

func beforeUpdateHook(entity any) func(*Event) error {
	if h, ok := entity.(BeforeUpdater); ok {
		return h.BeforeUpdate
	}
	return nil
}

func afterUpdateHook(entity any) func(*Event) error {
	if h, ok := entity.(AfterUpdater); ok {
		return h.AfterUpdate
	}
	return nil
}

func beforeDeleteHook(entity any) func(*Event) error {
	if h, ok := entity.(BeforeDeleter); ok {
		return h.BeforeDelete
	}
	return nil
}

func afterDeleteHook(entity any) func(*Event) error {
	if h, ok := entity.(AfterDeleter); ok {
		return h.AfterDelete
	}
	return nil
}

func afterLoadHook(entity any) func(*Event) error {
	if h, ok := entity.(AfterLoader); ok {
		return h.AfterLoad
	}
	return nil
}

// validateHook resolves which of the two validation slots to call, per the
// fallback rules documented on FireBeforeValidate.
func validateHook(entity any, properties []string) func(*Event) error {
	pv, hasList := entity.(PropertyValidator)
	bv, hasNoArg := entity.(BeforeValidator)

	if properties != nil {
		if hasList {
			return func(ev *Event) error { return pv.BeforeValidateProperties(ev, properties) }
		}
		if hasNoArg {
			return bv.BeforeValidate
		}
		return nil
	}
	if hasNoArg {
		return bv.BeforeValidate
	}
	if hasList {
		return func(ev *Event) error { return pv.BeforeValidateProperties(ev, nil) }
	}
	return nil
}
