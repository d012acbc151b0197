package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the entity does not exist in the store.
var ErrNotFound = errors.New("entity not found")

// ErrCancelled is returned when a "before" phase listener cancelled the
// operation without raising an error. Listener errors surface as-is instead.
var ErrCancelled = errors.New("operation cancelled by lifecycle listener")

// ErrDuplicate is returned by Insert when an entity with the same key
// already exists.
var ErrDuplicate = errors.New("entity already exists")

// Keyer supplies the natural key used by engines that have no schema-derived
// primary key (the in-memory engine).
type Keyer interface {
	EntityKey() string
}

// Store abstracts a persistence engine wrapped with lifecycle events.
// Entities are pointers to structs; the store never retains them.
type Store interface {
	// Insert writes a new entity. The PreInsert phase fires first (stamping
	// timestamps where configured); PostInsert fires only after the write
	// succeeded.
	Insert(ctx context.Context, entity any) error

	// Update writes the entity's current state over the stored one.
	Update(ctx context.Context, entity any) error

	// Delete removes the entity. Returns ErrNotFound when nothing matched.
	Delete(ctx context.Context, entity any) error

	// Load populates dest from storage. The OnLoad phase fires before field
	// population and PostLoad after it, both before Load returns, so
	// listener mutations are visible to the caller. conds narrow the lookup
	// (a primary key for the SQL engine, a string key for the memory
	// engine).
	Load(ctx context.Context, dest any, conds ...any) error

	// Validate fires the BeforeValidate phase. properties is the ordered
	// list of property names under validation; nil means the validation was
	// implicit. Returns ErrCancelled when a listener rejected the entity.
	Validate(ctx context.Context, entity any, properties []string) error
}
