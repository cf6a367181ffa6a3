package funcs

import (
	"fmt"
	"reflect"

	"github.com/moisespsena-go/tracederror"
	"github.com/pkg/errors"
)

// Producer calls a checked zero-argument function.
type Producer struct {
	f reflect.Value
}

func NewProducer(f interface{}) (*Producer, error) {
	vf := reflect.ValueOf(f)
	if err := CheckProducerValue(vf); err != nil {
		return nil, err
	}
	return &Producer{f: vf}, nil
}

func MustProducer(f interface{}) *Producer {
	p, err := NewProducer(f)
	if err != nil {
		panic(err)
	}
	return p
}

// Type returns the function type.
func (p *Producer) Type() reflect.Type {
	return p.f.Type()
}

// Call invokes the function and returns its value. A non-nil error result is
// returned as is, wrapped with context. A panic becomes a traced error.
func (p *Producer) Call() (interface{}, error) {
	result, err := p.call()
	if err != nil {
		return nil, err
	}
	if len(result) == 2 && !result[1].IsNil() {
		return nil, errors.Wrapf(result[1].Interface().(error), "calling producer %s", p.Type())
	}
	return result[0].Interface(), nil
}

func (p *Producer) call() (r []reflect.Value, err tracederror.TracedError) {
	defer func() {
		if r := recover(); r != nil {
			switch t := r.(type) {
			case tracederror.TracedError:
				err = t
			case error:
				err = tracederror.New(errors.Wrapf(t, "producer %s panicked", p.Type()))
			default:
				err = tracederror.New(errors.Wrapf(fmt.Errorf("%#v", t), "producer %s panicked", p.Type()))
			}
		}
	}()
	return p.f.Call(nil), nil
}
