package funcs

import (
	"fmt"
	"reflect"
	"unicode"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// GoodProducer reports whether the function type can supply a value on
// demand. We allow functions with no arguments and either 1 result, or 2
// results where the second is an error. A lone error result is not a value.
func GoodProducer(typ reflect.Type) bool {
	if typ == nil || typ.Kind() != reflect.Func || typ.NumIn() != 0 {
		return false
	}
	switch typ.NumOut() {
	case 1:
		return typ.Out(0) != errorType
	case 2:
		return typ.Out(1) == errorType
	default:
		return false
	}
}

// GoodName reports whether the name is a valid identifier.
func GoodName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_':
		case i == 0 && !unicode.IsLetter(r):
			return false
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			return false
		}
	}
	return true
}

func CheckName(name string) error {
	if !GoodName(name) {
		return fmt.Errorf("name %q is not a valid identifier", name)
	}
	return nil
}

func CheckProducerValue(vf reflect.Value) error {
	if !vf.IsValid() {
		return fmt.Errorf("producer isn't a valid function")
	}
	if vf.Kind() != reflect.Func {
		return fmt.Errorf("producer of type %s is not a function", vf.Type())
	}
	if vf.IsNil() {
		return fmt.Errorf("producer of type %s is nil", vf.Type())
	}
	if !GoodProducer(vf.Type()) {
		return fmt.Errorf("producer of type %s: bad signature; want func() T or func() (T, error)", vf.Type())
	}
	return nil
}

// IsProducer reports whether f is a non-nil function usable as a Producer.
func IsProducer(f interface{}) bool {
	return CheckProducerValue(reflect.ValueOf(f)) == nil
}
