// Package getset helps implementing combined getter/setter methods:
//
//	type Foo struct {
//		length *Length
//	}
//
//	func (f *Foo) Length(value ...interface{}) (interface{}, error) {
//		return getset.Must(getset.Access(f, "length")).
//			Initially(func() interface{} { return NewLength(20) }).
//			GetOrSet(value...)
//	}
//
// Called without a value the method returns the property, called with a
// value it stores it and returns f. Defaults apply while the property is
// nil, so it has to be of a nilable type (pointer, interface, map, slice,
// func or chan).
//
// OfType panics on an unknown type tag, the way Must panics on a lookup
// error; use ParseType with WithType to get the error instead.
package getset

import (
	"github.com/moisespsena-go/getset/property"
)

// Accessor wraps the object whose properties are accessed.
type Accessor struct {
	instance interface{}
}

// New fails with an InvalidArgumentError if instance is not a non-nil
// pointer to a struct, a map with string keys or a Holder.
func New(instance interface{}) (*Accessor, error) {
	if err := property.CheckInstance(instance); err != nil {
		return nil, err
	}
	return &Accessor{instance: instance}, nil
}

// Instance returns the wrapped object.
func (a *Accessor) Instance() interface{} {
	return a.instance
}

// Property returns an Interactor for the named property. Private struct
// fields are accessible too.
func (a *Accessor) Property(name string) (*Interactor, error) {
	return property.New(a.instance, name)
}

// Access is an alias for Property.
func (a *Accessor) Access(name string) (*Interactor, error) {
	return a.Property(name)
}

// Access is equivalent to New(instance) followed by Property(name).
func Access(instance interface{}, name string) (*Interactor, error) {
	a, err := New(instance)
	if err != nil {
		return nil, err
	}
	return a.Property(name)
}

// Must is a helper that wraps a call to a function returning
// (*Interactor, error) and panics if the error is non-nil.
func Must(i *Interactor, err error) *Interactor {
	if err != nil {
		panic(err)
	}
	return i
}
