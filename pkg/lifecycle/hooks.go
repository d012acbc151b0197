package lifecycle

// Entities expose lifecycle behavior by implementing any subset of the
// interfaces below. Absence of a hook is not an error; the dispatcher simply
// skips the call. Each hook receives the Event for the phase so it can
// inspect the operation and, for "before" phases, request cancellation via
// ev.Cancel(). Returning a non-nil error from a "before" hook aborts the
// operation and surfaces the error to the caller.

// BeforeInserter runs before the entity's row is written for the first time.
type BeforeInserter interface {
	BeforeInsert(ev *Event) error
}

// AfterInserter runs after an insert durably succeeded.
type AfterInserter interface {
	AfterInsert(ev *Event) error
}

// BeforeUpdater runs before an update is written.
type BeforeUpdater interface {
	BeforeUpdate(ev *Event) error
}

// AfterUpdater runs after an update durably succeeded.
type AfterUpdater interface {
	AfterUpdate(ev *Event) error
}

// BeforeDeleter runs before the entity's row is deleted.
type BeforeDeleter interface {
	BeforeDelete(ev *Event) error
}

// AfterDeleter runs after a delete durably succeeded.
type AfterDeleter interface {
	AfterDelete(ev *Event) error
}

// BeforeValidator is the no-argument validation slot: it runs for validation
// passes that do not name specific properties, and as the fallback when the
// caller named properties but the entity has no PropertyValidator.
type BeforeValidator interface {
	BeforeValidate(ev *Event) error
}

// PropertyValidator is the property-list validation slot. properties is the
// ordered list the caller supplied, or nil when this slot runs as the
// fallback for an implicit validation pass. At most one of the two
// validation slots is invoked per pass.
type PropertyValidator interface {
	BeforeValidateProperties(ev *Event, properties []string) error
}

// OnLoader runs immediately before the entity's fields are populated from
// storage.
type OnLoader interface {
	OnLoad(ev *Event) error
}

// BeforeLoader is an alias hook for the same phase as OnLoader. An entity
// may implement one or the other; implementing both is a configuration
// error reported by Describe.
type BeforeLoader interface {
	BeforeLoad(ev *Event) error
}

// AfterLoader runs immediately after field population. The hook may mutate
// the entity's fields in place; the dispatcher fires it synchronously, so
// mutations are visible to the caller of the load operation.
type AfterLoader interface {
	AfterLoad(ev *Event) error
}

// Timestamper lets an entity opt out of automatic created-at/updated-at
// stamping. Entities that do not implement it have timestamping enabled
// whenever the dispatcher's default says so.
type Timestamper interface {
	AutoTimestamps() bool
}

// loadHook returns the load-phase hook for entity, resolving the OnLoad /
// BeforeLoad alias. Describe has already rejected entities implementing
// both, but resolution here is still deterministic: OnLoad wins.
func loadHook(entity any) func(ev *Event) error {
	if h, ok := entity.(OnLoader); ok {
		return h.OnLoad
	}
	if h, ok := entity.(BeforeLoader); ok {
		return h.BeforeLoad
	}
	return nil
}
