package utils

import "reflect"

// CanBeNil reports whether an untyped nil can be assigned to the type.
func CanBeNil(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice, reflect.UnsafePointer:
		return true
	}
	return false
}

// IsNil reports whether v is nil or a typed nil of a nilable kind.
func IsNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return CanBeNil(rv.Type()) && rv.IsNil()
}

// IsUnset reports whether the value holds nothing: invalid, nil, or an
// interface holding a typed nil. Values of kinds that can't be nil are
// always set, zero or not.
func IsUnset(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return true
		}
		v = v.Elem()
	}
	return CanBeNil(v.Type()) && v.IsNil()
}
