package property

import (
	"testing"

	"github.com/moisespsena-go/tracederror"
	"github.com/pkg/errors"
	"gotest.tools/assert"
)

func TestNewIllegalPropertyError(t *testing.T) {
	o := &object{}
	e, err := NewIllegalPropertyError("nonExistent", o)
	assert.NilError(t, err)
	assert.Equal(t, "nonExistent", e.IllegalProperty())
	assert.Assert(t, e.Instance() == interface{}(o))
	assert.Error(t, e, `property "nonExistent" does not exist on given object`)
	assert.Assert(t, errors.Is(e, ErrIllegalProperty))
	assert.Assert(t, !errors.Is(e, ErrInvalidArgument))
}

func TestNewIllegalPropertyErrorInvalidArguments(t *testing.T) {
	tests := []struct {
		name     string
		property string
		instance interface{}
		argument string
	}{
		{name: "nil instance", property: "foo", instance: nil, argument: "instance"},
		{name: "scalar instance", property: "foo", instance: 42, argument: "instance"},
		{name: "empty name", property: "", instance: &object{}, argument: "name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIllegalPropertyError(tt.property, tt.instance)
			var iae *InvalidArgumentError
			assert.Assert(t, errors.As(err, &iae), "got %v", err)
			assert.Equal(t, tt.argument, iae.Argument)
		})
	}
}

func TestGetIllegalPropertyError(t *testing.T) {
	e, err := NewIllegalPropertyError("foo", &object{})
	assert.NilError(t, err)

	tests := []struct {
		name string
		err  error
		ok   bool
	}{
		{name: "direct", err: e, ok: true},
		{name: "wrapped", err: errors.Wrap(e, "context"), ok: true},
		{name: "traced", err: tracederror.New(errors.Wrap(e, "context")), ok: true},
		{name: "other", err: errors.New("other")},
		{name: "nil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetIllegalPropertyError(tt.err)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, e, got)
			}
			assert.Equal(t, tt.ok, IsIllegalProperty(tt.err))
		})
	}
}
