package memory

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entitykit/entitykit/pkg/lifecycle"
	"github.com/entitykit/entitykit/pkg/model"
	"github.com/entitykit/entitykit/pkg/store"
)

func TestInsertLoadRoundTrip(t *testing.T) {
	events := lifecycle.NewDispatcher()
	s := NewStore(events)
	ctx := context.Background()

	var phases []lifecycle.EventType
	for _, token := range []lifecycle.Token{
		lifecycle.TokenPreInsert, lifecycle.TokenPostInsert,
		lifecycle.TokenPreLoad, lifecycle.TokenPostLoad,
	} {
		require.NoError(t, events.RegisterListener(token, func(ev *lifecycle.Event) error {
			phases = append(phases, ev.Type)
			return nil
		}))
	}

	fred := &model.Person{Name: "Fred"}
	require.NoError(t, s.Insert(ctx, fred))
	assert.NotZero(t, fred.ID, "identity is assigned on first successful insert")
	assert.False(t, fred.CreatedAt.IsZero())

	var loaded model.Person
	require.NoError(t, s.Load(ctx, &loaded, "Fred"))

	assert.Equal(t, "Fred", loaded.Name)
	assert.Equal(t, fred.ID, loaded.ID)
	assert.Equal(t, []lifecycle.EventType{
		lifecycle.EventTypePreInsert,
		lifecycle.EventTypePostInsert,
		lifecycle.EventTypeOnLoad,
		lifecycle.EventTypePostLoad,
	}, phases, "load fires OnLoad before field population and PostLoad after")
}

func TestCancelledInsertNeverFiresPostInsert(t *testing.T) {
	events := lifecycle.NewDispatcher()
	s := NewStore(events)

	require.NoError(t, events.RegisterListener(lifecycle.TokenPreInsert, func(ev *lifecycle.Event) error {
		ev.Cancel()
		return nil
	}))
	var postFired bool
	require.NoError(t, events.RegisterListener(lifecycle.TokenPostInsert, func(ev *lifecycle.Event) error {
		postFired = true
		return nil
	}))

	err := s.Insert(context.Background(), &model.Person{Name: "Fred"})

	assert.ErrorIs(t, err, store.ErrCancelled)
	assert.False(t, postFired)

	var loaded model.Person
	err = s.Load(context.Background(), &loaded, "Fred")
	assert.ErrorIs(t, err, store.ErrNotFound, "a cancelled insert writes nothing")
}

func TestEntityHookErrorAbortsInsert(t *testing.T) {
	events := lifecycle.NewDispatcher()
	s := NewStore(events)

	err := s.Insert(context.Background(), &model.Person{Name: "   "})

	var lerr *lifecycle.ListenerError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, lifecycle.EventTypePreInsert, lerr.Phase)
}

func TestUpdateAndDeleteRequireExistingEntity(t *testing.T) {
	events := lifecycle.NewDispatcher()
	s := NewStore(events)
	ctx := context.Background()

	fred := &model.Person{Name: "Fred"}
	assert.ErrorIs(t, s.Update(ctx, fred), store.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, fred), store.ErrNotFound)

	require.NoError(t, s.Insert(ctx, fred))

	fred.Email = "Fred@Example.com"
	require.NoError(t, s.Update(ctx, fred))

	var loaded model.Person
	require.NoError(t, s.Load(ctx, &loaded, "Fred"))
	assert.Equal(t, "Fred@Example.com", loaded.Email)

	require.NoError(t, s.Delete(ctx, fred))
	assert.ErrorIs(t, s.Load(ctx, &loaded, "Fred"), store.ErrNotFound)
}

func TestDuplicateInsertRejected(t *testing.T) {
	events := lifecycle.NewDispatcher()
	s := NewStore(events)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, &model.Person{Name: "Fred"}))

	err := s.Insert(ctx, &model.Person{Name: "Fred"})
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestUpdateStampsUpdatedAtOnly(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	events := lifecycle.NewDispatcher(lifecycle.WithClock(func() time.Time { return now }))
	s := NewStore(events)
	ctx := context.Background()

	fred := &model.Person{Name: "Fred"}
	require.NoError(t, s.Insert(ctx, fred))
	created := fred.CreatedAt

	require.NoError(t, s.Update(ctx, fred))

	assert.Equal(t, created, fred.CreatedAt)
	assert.Equal(t, now, fred.UpdatedAt)
}

func TestReminderTimestampsUntouched(t *testing.T) {
	events := lifecycle.NewDispatcher()
	s := NewStore(events)
	ctx := context.Background()

	r := &model.Reminder{Note: "water the plants"}
	require.NoError(t, s.Insert(ctx, r))

	assert.True(t, r.CreatedAt.IsZero())
	assert.True(t, r.UpdatedAt.IsZero())
}

func TestValidateRoutesThroughDispatcher(t *testing.T) {
	events := lifecycle.NewDispatcher()
	s := NewStore(events)
	ctx := context.Background()

	p := &model.Person{Name: "Fred", Email: "fred@example.com"}
	assert.NoError(t, s.Validate(ctx, p, []string{"email"}))

	p.Email = "nope"
	assert.Error(t, s.Validate(ctx, p, []string{"email"}))
	assert.NoError(t, s.Validate(ctx, p, []string{"name"}))
}

func TestStoredCopyIsIsolatedFromCallerMutations(t *testing.T) {
	events := lifecycle.NewDispatcher()
	s := NewStore(events)
	ctx := context.Background()

	fred := &model.Person{Name: "Fred", Email: "fred@example.com"}
	require.NoError(t, s.Insert(ctx, fred))

	fred.Email = "changed@example.com"

	var loaded model.Person
	require.NoError(t, s.Load(ctx, &loaded, "Fred"))
	assert.Equal(t, "fred@example.com", loaded.Email)
}

func TestLoadAcceptsSQLStyleConditions(t *testing.T) {
	events := lifecycle.NewDispatcher()
	s := NewStore(events)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, &model.Person{Name: "Fred"}))

	// Callers written against the SQL-backed store pass ("col = ?", key).
	var loaded model.Person
	require.NoError(t, s.Load(ctx, &loaded, "name = ?", "Fred"))
	assert.Equal(t, "Fred", loaded.Name)

	err := s.Load(ctx, &loaded, "name", "Fred", "extra")
	assert.Error(t, err)

	err = s.Load(ctx, &loaded, 42)
	assert.Error(t, err)
}

func TestHookNormalizedKeyIsTheStoredKey(t *testing.T) {
	events := lifecycle.NewDispatcher()
	s := NewStore(events)
	ctx := context.Background()

	// A before-phase listener that normalizes the key field, the way entity
	// hooks normalize other fields. The row must land under the new key.
	require.NoError(t, events.RegisterListener(lifecycle.TokenBeforeInsert, func(ev *lifecycle.Event) error {
		p := ev.Entity.(*model.Person)
		p.Name = strings.TrimSpace(p.Name)
		return nil
	}))

	require.NoError(t, s.Insert(ctx, &model.Person{Name: "  Fred  "}))

	var loaded model.Person
	require.NoError(t, s.Load(ctx, &loaded, "Fred"))
	assert.Equal(t, "Fred", loaded.Name)

	err := s.Load(ctx, &loaded, "  Fred  ")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
