package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/entitykit/entitykit/pkg/lifecycle"
	"github.com/entitykit/entitykit/pkg/store"
)

// Ensure Store implements store.Store
var _ store.Store = (*Store)(nil)

// Store implements store.Store using GORM.
type Store struct {
	db     *gorm.DB
	events *lifecycle.Dispatcher
}

// NewStore creates a GORM-backed store firing events on the given
// dispatcher.
func NewStore(db *gorm.DB, events *lifecycle.Dispatcher) *Store {
	return &Store{db: db, events: events}
}

// Events returns the dispatcher this store fires on.
func (s *Store) Events() *lifecycle.Dispatcher {
	return s.events
}

// Insert writes a new row for entity. A cancelled PreInsert phase aborts
// before any SQL runs; PostInsert fires only after the insert committed.
func (s *Store) Insert(ctx context.Context, entity any) error {
	cancelled, err := s.events.FireBeforeInsert(entity)
	if err != nil {
		return err
	}
	if cancelled {
		return store.ErrCancelled
	}

	if err := s.db.WithContext(ctx).Create(entity).Error; err != nil {
		return err
	}

	return s.events.FireAfterInsert(entity)
}

// Update writes the entity's current state over the stored row.
func (s *Store) Update(ctx context.Context, entity any) error {
	cancelled, err := s.events.FireBeforeUpdate(entity)
	if err != nil {
		return err
	}
	if cancelled {
		return store.ErrCancelled
	}

	if err := s.db.WithContext(ctx).Save(entity).Error; err != nil {
		return err
	}

	return s.events.FireAfterUpdate(entity)
}

// Delete removes the entity's row. When no row matched, ErrNotFound is
// returned and the PostDelete phase does not fire.
func (s *Store) Delete(ctx context.Context, entity any) error {
	cancelled, err := s.events.FireBeforeDelete(entity)
	if err != nil {
		return err
	}
	if cancelled {
		return store.ErrCancelled
	}

	tx := s.db.WithContext(ctx).Delete(entity)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrNotFound
	}

	return s.events.FireAfterDelete(entity)
}

// Load populates dest from the database. OnLoad fires before the query runs
// and PostLoad after dest's fields are populated, so listener mutations are
// visible to the caller.
func (s *Store) Load(ctx context.Context, dest any, conds ...any) error {
	if err := s.events.FireOnLoad(dest); err != nil {
		return err
	}

	tx := s.db.WithContext(ctx).First(dest, conds...)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return store.ErrNotFound
		}
		return tx.Error
	}

	return s.events.FireAfterLoad(dest)
}

// Validate fires the BeforeValidate phase for entity.
func (s *Store) Validate(ctx context.Context, entity any, properties []string) error {
	cancelled, err := s.events.FireBeforeValidate(entity, properties)
	if err != nil {
		return err
	}
	if cancelled {
		return store.ErrCancelled
	}
	return nil
}
