package memory

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/entitykit/entitykit/pkg/lifecycle"
	"github.com/entitykit/entitykit/pkg/store"
)

// Ensure Store implements store.Store
var _ store.Store = (*Store)(nil)

// Store is a map-backed persistence engine. Entities are stored by value, so
// mutations after Insert are not visible until Update. Entities must
// implement store.Keyer.
type Store struct {
	events *lifecycle.Dispatcher

	mu     sync.RWMutex
	tables map[string]map[string]any
	nextID int64
}

// NewStore creates an empty in-memory store firing events on the given
// dispatcher.
func NewStore(events *lifecycle.Dispatcher) *Store {
	return &Store{
		events: events,
		tables: make(map[string]map[string]any),
	}
}

// Events returns the dispatcher this store fires on.
func (s *Store) Events() *lifecycle.Dispatcher {
	return s.events
}

// Insert stores a copy of entity under its key. On first successful insert
// an unset int64 ID field is assigned a store-unique identity, stable
// thereafter. The key is read after the before phase so hooks that
// normalize the key field store the row under the normalized key.
func (s *Store) Insert(ctx context.Context, entity any) error {
	if _, err := entityKey(entity); err != nil {
		return err
	}

	cancelled, err := s.events.FireBeforeInsert(entity)
	if err != nil {
		return err
	}
	if cancelled {
		return store.ErrCancelled
	}
	key, err := entityKey(entity)
	if err != nil {
		return err
	}

	table := tableName(entity)

	s.mu.Lock()
	rows, ok := s.tables[table]
	if !ok {
		rows = make(map[string]any)
		s.tables[table] = rows
	}
	if _, exists := rows[key]; exists {
		s.mu.Unlock()
		return store.ErrDuplicate
	}
	s.assignIdentity(entity)
	rows[key] = snapshot(entity)
	s.mu.Unlock()

	return s.events.FireAfterInsert(entity)
}

// Update replaces the stored copy with the entity's current state.
func (s *Store) Update(ctx context.Context, entity any) error {
	if _, err := entityKey(entity); err != nil {
		return err
	}

	cancelled, err := s.events.FireBeforeUpdate(entity)
	if err != nil {
		return err
	}
	if cancelled {
		return store.ErrCancelled
	}
	key, err := entityKey(entity)
	if err != nil {
		return err
	}

	table := tableName(entity)

	s.mu.Lock()
	rows := s.tables[table]
	if _, exists := rows[key]; !exists {
		s.mu.Unlock()
		return store.ErrNotFound
	}
	rows[key] = snapshot(entity)
	s.mu.Unlock()

	return s.events.FireAfterUpdate(entity)
}

// Delete removes the stored copy.
func (s *Store) Delete(ctx context.Context, entity any) error {
	if _, err := entityKey(entity); err != nil {
		return err
	}

	cancelled, err := s.events.FireBeforeDelete(entity)
	if err != nil {
		return err
	}
	if cancelled {
		return store.ErrCancelled
	}
	key, err := entityKey(entity)
	if err != nil {
		return err
	}

	table := tableName(entity)

	s.mu.Lock()
	rows := s.tables[table]
	if _, exists := rows[key]; !exists {
		s.mu.Unlock()
		return store.ErrNotFound
	}
	delete(rows, key)
	s.mu.Unlock()

	return s.events.FireAfterDelete(entity)
}

// Load populates dest from the stored copy under the given string key.
// OnLoad fires before field population and PostLoad after it.
func (s *Store) Load(ctx context.Context, dest any, conds ...any) error {
	key, err := condKey(conds)
	if err != nil {
		return err
	}

	if err := s.events.FireOnLoad(dest); err != nil {
		return err
	}

	s.mu.RLock()
	row, ok := s.tables[tableName(dest)][key]
	s.mu.RUnlock()
	if !ok {
		return store.ErrNotFound
	}

	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Pointer || dv.IsNil() {
		return fmt.Errorf("memory: Load dest must be a non-nil pointer, got %T", dest)
	}
	rv := reflect.ValueOf(row)
	if !rv.Type().AssignableTo(dv.Elem().Type()) {
		return fmt.Errorf("memory: stored %s is not assignable to %T", rv.Type(), dest)
	}
	dv.Elem().Set(rv)

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

// assignIdentity gives an unset int64 ID field a store-unique value. Called
// with s.mu held.
func (s *Store) assignIdentity(entity any) {
	v := reflect.ValueOf(entity).Elem()
	if v.Kind() != reflect.Struct {
		return
	}
	f := v.FieldByName("ID")
	if !f.IsValid() || !f.CanSet() || f.Kind() != reflect.Int64 || f.Int() != 0 {
		return
	}
	s.nextID++
	f.SetInt(s.nextID)
}

// condKey extracts the lookup key from Load conditions. A bare string key is
// accepted, as is the two-argument ("col = ?", key) form the SQL-backed store
// takes, so callers can swap stores without changing call sites.
func condKey(conds []any) (string, error) {
	switch len(conds) {
	case 1:
		key, ok := conds[0].(string)
		if !ok {
			return "", fmt.Errorf("memory: Load key must be a string, got %T", conds[0])
		}
		return key, nil
	case 2:
		query, ok := conds[0].(string)
		if !ok || !strings.Contains(query, "?") {
			return "", fmt.Errorf("memory: unsupported Load conditions %v", conds)
		}
		key, ok := conds[1].(string)
		if !ok {
			return "", fmt.Errorf("memory: Load key must be a string, got %T", conds[1])
		}
		return key, nil
	default:
		return "", fmt.Errorf("memory: Load requires a key, got %d conditions", len(conds))
	}
}

func entityKey(entity any) (string, error) {
	k, ok := entity.(store.Keyer)
	if !ok {
		return "", fmt.Errorf("memory: %T does not implement store.Keyer", entity)
	}
	return k.EntityKey(), nil
}

func tableName(entity any) string {
	if tn, ok := entity.(interface{ TableName() string }); ok {
		return tn.TableName()
	}
	t := reflect.TypeOf(entity)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strings.ToLower(t.Name())
}

// snapshot copies the entity's struct value so later caller mutations do not
// leak into the store.
func snapshot(entity any) any {
	return reflect.ValueOf(entity).Elem().Interface()
}
