package audit

import (
	"reflect"

	"github.com/entitykit/entitykit/pkg/lifecycle"
	"github.com/entitykit/entitykit/pkg/store"
)

// Ensure Listener implements lifecycle.CustomListener
var _ lifecycle.CustomListener = (*Listener)(nil)

// Listener records completed lifecycle operations. It subscribes to the
// post phases only: before phases may still be cancelled and would pollute
// the trail with operations that never happened.
type Listener struct {
	logger *Logger
	store  *Store
}

// NewListener creates an audit listener. store may be nil, in which case
// events are only written to the syslog-format logger.
func NewListener(store *Store) *Listener {
	return &Listener{logger: NewLogger(), store: store}
}

// SetLogger overrides the syslog-format logger (for testing)
func (l *Listener) SetLogger(logger *Logger) {
	l.logger = logger
}

// SupportsEventType accepts the post phases of every operation.
func (l *Listener) SupportsEventType(t lifecycle.EventType) bool {
	switch t {
	case lifecycle.EventTypePostInsert,
		lifecycle.EventTypePostUpdate,
		lifecycle.EventTypePostDelete,
		lifecycle.EventTypePostLoad:
		return true
	}
	return false
}

// OnPersistenceEvent records the event. A storage failure surfaces to the
// caller of the persistence operation but cannot undo it.
func (l *Listener) OnPersistenceEvent(ev *lifecycle.Event) error {
	event := OperationEvent{
		Phase:      ev.Type,
		EntityType: entityTypeName(ev.Entity),
		EntityKey:  entityKey(ev.Entity),
	}

	l.logger.Log(event)
	return l.store.Save(event)
}

func entityTypeName(entity any) string {
	t := reflect.TypeOf(entity)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "unknown"
	}
	return t.Name()
}

func entityKey(entity any) string {
	if k, ok := entity.(store.Keyer); ok {
		return k.EntityKey()
	}
	return ""
}
