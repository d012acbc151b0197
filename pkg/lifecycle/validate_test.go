package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bothSlots exposes both validation overloads.
type bothSlots struct {
	Age int

	noArgCalls int
	listCalls  int
	lastProps  []string
}

func (v *bothSlots) BeforeValidate(ev *Event) error {
	v.noArgCalls++
	return nil
}

func (v *bothSlots) BeforeValidateProperties(ev *Event, properties []string) error {
	v.listCalls++
	v.lastProps = properties
	return nil
}

// listOnly exposes only the property-list overload.
type listOnly struct {
	calls     int
	lastProps []string
	gotCalled bool
}

func (v *listOnly) BeforeValidateProperties(ev *Event, properties []string) error {
	v.calls++
	v.lastProps = properties
	v.gotCalled = true
	return nil
}

// noArgOnly exposes only the no-argument overload.
type noArgOnly struct {
	calls int
}

func (v *noArgOnly) BeforeValidate(ev *Event) error {
	v.calls++
	return nil
}

func TestValidateExplicitListInvokesListSlotOnly(t *testing.T) {
	d := NewDispatcher()
	v := &bothSlots{}

	cancelled, err := d.FireBeforeValidate(v, []string{"age", "name"})

	require.NoError(t, err)
	assert.False(t, cancelled)
	assert.Equal(t, 1, v.listCalls)
	assert.Equal(t, []string{"age", "name"}, v.lastProps)
	assert.Zero(t, v.noArgCalls, "at most one slot runs per pass")
}

func TestValidateImplicitPrefersNoArgSlot(t *testing.T) {
	d := NewDispatcher()
	v := &bothSlots{}

	_, err := d.FireBeforeValidate(v, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, v.noArgCalls)
	assert.Zero(t, v.listCalls)
}

func TestValidateImplicitFallsBackToListSlot(t *testing.T) {
	d := NewDispatcher()
	v := &listOnly{}

	_, err := d.FireBeforeValidate(v, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, v.calls, "fallback slot runs exactly once")
	assert.Nil(t, v.lastProps, "fallback supplies an absent list")
}

func TestValidateExplicitFallsBackToNoArgSlot(t *testing.T) {
	d := NewDispatcher()
	v := &noArgOnly{}

	_, err := d.FireBeforeValidate(v, []string{"age"})

	require.NoError(t, err)
	assert.Equal(t, 1, v.calls)
}

func TestValidateEventCarriesProperties(t *testing.T) {
	d := NewDispatcher()
	var got []string
	require.NoError(t, d.RegisterListener(TokenBeforeValidate, func(ev *Event) error {
		got = ev.Properties
		return nil
	}))

	_, err := d.FireBeforeValidate(&listOnly{}, []string{"name"})

	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, got)
}
