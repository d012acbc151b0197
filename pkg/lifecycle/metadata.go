package lifecycle

import (
	"fmt"
	"reflect"
	"sync"
	"time"
)

const tagName = "entitykit"

// Metadata is the reflection-derived description of an entity type: which
// fields hold the automatic timestamps and which load hook the type exposes.
// Metadata is computed once per type and cached.
type Metadata struct {
	Type reflect.Type

	// CreatedAtIndex and UpdatedAtIndex are struct field indices, or -1 when
	// the type declares no such field.
	CreatedAtIndex int
	UpdatedAtIndex int
}

var metadataCache sync.Map // reflect.Type -> *Metadata

// Describe inspects an entity prototype and returns its cached Metadata.
// entity must be a pointer to a struct.
//
// Describe is the registration/reflection-time checkpoint for entity
// configuration: it rejects types that implement both OnLoad and BeforeLoad,
// which name the same phase. Engines should describe their entity prototypes
// at setup so misconfiguration surfaces before any event fires.
func Describe(entity any) (*Metadata, error) {
	t := reflect.TypeOf(entity)
	if t == nil || t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("lifecycle: entity must be a pointer to a struct, got %T", entity)
	}

	if cached, ok := metadataCache.Load(t); ok {
		return cached.(*Metadata), nil
	}

	if _, onLoad := entity.(OnLoader); onLoad {
		if _, beforeLoad := entity.(BeforeLoader); beforeLoad {
			return nil, fmt.Errorf("lifecycle: %s implements both OnLoad and BeforeLoad; they name the same phase, implement one", t.Elem())
		}
	}

	meta := &Metadata{
		Type:           t,
		CreatedAtIndex: timestampField(t.Elem(), "created", "CreatedAt"),
		UpdatedAtIndex: timestampField(t.Elem(), "updated", "UpdatedAt"),
	}

	metadataCache.Store(t, meta)
	return meta, nil
}

// timestampField finds the field tagged `entitykit:"<tag>"`, falling back to
// the conventional field name. Returns -1 when neither exists or the field
// is not a time.Time / *time.Time.
func timestampField(t reflect.Type, tag string, name string) int {
	byName := -1
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !isTimeType(f.Type) {
			continue
		}
		if f.Tag.Get(tagName) == tag {
			return i
		}
		if f.Name == name {
			byName = i
		}
	}
	return byName
}

var timeType = reflect.TypeOf(time.Time{})

func isTimeType(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t == timeType
}

// stampCreated sets the created-at field to now unless it already holds a
// value. Reports whether the entity declares a created-at field at all.
func (m *Metadata) stampCreated(entity any, now time.Time) {
	if m.CreatedAtIndex < 0 {
		return
	}
	f := reflect.ValueOf(entity).Elem().Field(m.CreatedAtIndex)
	if timestampIsSet(f) {
		return
	}
	setTimestamp(f, now)
}

// stampUpdated unconditionally sets the updated-at field to now.
func (m *Metadata) stampUpdated(entity any, now time.Time) {
	if m.UpdatedAtIndex < 0 {
		return
	}
	setTimestamp(reflect.ValueOf(entity).Elem().Field(m.UpdatedAtIndex), now)
}

func timestampIsSet(f reflect.Value) bool {
	if f.Kind() == reflect.Pointer {
		return !f.IsNil()
	}
	return !f.Interface().(time.Time).IsZero()
}

func setTimestamp(f reflect.Value, now time.Time) {
	if !f.CanSet() {
		return
	}
	if f.Kind() == reflect.Pointer {
		f.Set(reflect.ValueOf(&now))
		return
	}
	f.Set(reflect.ValueOf(now))
}
