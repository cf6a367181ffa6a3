package property

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/moisespsena-go/getset/funcs"
	"github.com/moisespsena-go/getset/utils"
)

// Interactor reads and writes one property of an object. It backs combined
// getter/setter methods: called without a value it reads, called with a
// value it writes and returns the object.
//
// The property is resolved once, when the Interactor is created.
type Interactor struct {
	instance interface{}
	name     string
	kind     Type
	initial  *defaultSource
	handle   handle
}

// New binds instance and the property name. It fails with an
// InvalidArgumentError if instance is not an object or name is empty, and
// with an IllegalPropertyError if the property does not exist.
func New(instance interface{}, name string) (*Interactor, error) {
	if err := CheckInstance(instance); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, invalidArgument("name", "property name has to be a non-empty string")
	}
	h, err := resolve(instance, name)
	if err != nil {
		return nil, err
	}
	return &Interactor{instance: instance, name: name, handle: h}, nil
}

func (i *Interactor) Name() string {
	return i.name
}

func (i *Interactor) Instance() interface{} {
	return i.instance
}

func (i *Interactor) Type() Type {
	return i.kind
}

// OfType restricts the values accepted on write. It panics with an
// InvalidArgumentError if the tag is unknown.
func (i *Interactor) OfType(tag string) *Interactor {
	return i.WithType(MustParseType(tag))
}

// WithType is OfType for a parsed Type; it panics if t is not a known Type.
func (i *Interactor) WithType(t Type) *Interactor {
	if !t.Valid() {
		panic(invalidArgument("type", "unknown type %s", t))
	}
	i.kind = t
	return i
}

// Initially sets the value returned while the property is nil. A function
// taking no arguments and returning a value, or a value and an error, is
// called on the first read that needs it; anything else is used as is.
// The default is stored into the property through the same checks as a
// write. Properties whose type can't hold nil never use a default: reading
// them with one configured fails with an InvalidArgumentError.
func (i *Interactor) Initially(value interface{}) *Interactor {
	if funcs.IsProducer(value) {
		i.initial = &defaultSource{producer: funcs.MustProducer(value)}
	} else {
		i.initial = &defaultSource{literal: value}
	}
	return i
}

func (i *Interactor) InitiallyFunc(f func() interface{}) *Interactor {
	if f == nil {
		i.initial = nil
		return i
	}
	i.initial = &defaultSource{producer: funcs.MustProducer(f)}
	return i
}

// GetOrSet reads the property when called without a value or with nil, and
// writes value otherwise, returning the object.
func (i *Interactor) GetOrSet(value ...interface{}) (interface{}, error) {
	switch len(value) {
	case 0:
		return i.get()
	case 1:
		if value[0] == nil {
			return i.get()
		}
		if err := i.set(value[0]); err != nil {
			return nil, err
		}
		return i.instance, nil
	}
	return nil, invalidArgument("value", "expected at most one value, got %d", len(value))
}

// Get is GetOrSet without a value.
func (i *Interactor) Get() (interface{}, error) {
	return i.get()
}

// Set writes value. nil is rejected since it is reserved for reading.
func (i *Interactor) Set(value interface{}) error {
	if value == nil {
		return invalidArgument("value", "nil can't be set")
	}
	return i.set(value)
}

func (i *Interactor) get() (interface{}, error) {
	v := i.handle.get()
	if i.initial == nil {
		return valueInterface(v), nil
	}
	if typ := i.handle.typ(); !utils.CanBeNil(typ) {
		return nil, invalidArgument("default", "property %q of type %s can't be nil, so its default never applies", i.name, typ)
	}
	if !utils.IsUnset(v) {
		return valueInterface(v), nil
	}
	def, err := i.initial.resolve()
	if err != nil {
		return nil, errors.Wrapf(err, "default of property %q", i.name)
	}
	if utils.IsNil(def) {
		return valueInterface(v), nil
	}
	if _, err = i.GetOrSet(def); err != nil {
		return nil, errors.Wrapf(err, "default of property %q", i.name)
	}
	return def, nil
}

func (i *Interactor) set(value interface{}) error {
	if !i.kind.Accepts(value) {
		return invalidArgument("value", "expected a value of type %s, got %s", i.kind, utils.Describe(value))
	}
	rv := reflect.ValueOf(value)
	if typ := i.handle.typ(); !rv.Type().AssignableTo(typ) {
		return invalidArgument("value", "%s is not assignable to property %q of type %s",
			utils.Describe(value), i.name, typ)
	}
	return i.handle.set(rv)
}

func valueInterface(v reflect.Value) interface{} {
	if !v.IsValid() {
		return nil
	}
	if v.Kind() == reflect.Interface && v.IsNil() {
		return nil
	}
	return v.Interface()
}
