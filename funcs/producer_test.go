package funcs

import (
	"strings"
	"testing"

	"github.com/moisespsena-go/tracederror"
	"github.com/pkg/errors"
	"gotest.tools/assert"
)

func TestProducerCall(t *testing.T) {
	p := MustProducer(func() int { return 42 })
	v, err := p.Call()
	assert.NilError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, "func() int", p.Type().String())
}

func TestProducerCallError(t *testing.T) {
	boom := errors.New("boom")
	p := MustProducer(func() (int, error) { return 0, boom })
	_, err := p.Call()
	assert.Assert(t, errors.Cause(err) == boom, "got %v", err)
	assert.ErrorContains(t, err, "calling producer func() (int, error)")

	p = MustProducer(func() (int, error) { return 7, nil })
	v, err := p.Call()
	assert.NilError(t, err)
	assert.Equal(t, 7, v)
}

func TestProducerCallPanic(t *testing.T) {
	tests := []struct {
		name  string
		f     func() interface{}
		cause string
	}{
		{name: "string", f: func() interface{} { panic("broken") }, cause: "broken"},
		{name: "error", f: func() interface{} { panic(errors.New("failed")) }, cause: "failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MustProducer(tt.f).Call()
			te, ok := err.(tracederror.TracedError)
			assert.Assert(t, ok, "got %T", err)
			assert.Assert(t, strings.Contains(te.Error(), tt.cause), "got %v", te)
		})
	}
}

func TestMustProducerPanics(t *testing.T) {
	defer func() {
		assert.Assert(t, recover() != nil)
	}()
	MustProducer(func(int) int { return 0 })
}
