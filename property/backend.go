package property

import (
	"reflect"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/moisespsena-go/getset/cache"
	"github.com/moisespsena-go/getset/funcs"
	"github.com/moisespsena-go/getset/utils"
)

// Holder is implemented by types that expose their properties by name
// instead of through struct fields. It is checked before struct fields.
type Holder interface {
	HasProperty(name string) bool
	Property(name string) interface{}
	SetProperty(name string, value interface{}) error
}

var emptyIfaceType = reflect.TypeOf((*interface{})(nil)).Elem()

// handle reads and writes one resolved property.
type handle interface {
	get() reflect.Value
	set(v reflect.Value) error
	typ() reflect.Type
}

// IsObject reports whether instance can carry properties: a non-nil Holder,
// a non-nil pointer to a struct or a non-nil map with string keys.
func IsObject(instance interface{}) bool {
	if utils.IsNil(instance) {
		return false
	}
	if _, ok := instance.(Holder); ok {
		return true
	}
	rv := reflect.ValueOf(instance)
	switch rv.Kind() {
	case reflect.Ptr:
		return rv.Elem().Kind() == reflect.Struct
	case reflect.Map:
		return rv.Type().Key().Kind() == reflect.String
	}
	return false
}

// CheckInstance returns an InvalidArgumentError if instance is not an object.
func CheckInstance(instance interface{}) error {
	if !IsObject(instance) {
		return invalidArgument("instance", "%s has to be an object", utils.Describe(instance))
	}
	return nil
}

func resolve(instance interface{}, name string) (handle, error) {
	if h, ok := instance.(Holder); ok {
		if !h.HasProperty(name) {
			return nil, &IllegalPropertyError{name: name, instance: instance}
		}
		return &holderHandle{h: h, name: name}, nil
	}

	rv := reflect.ValueOf(instance)
	switch rv.Kind() {
	case reflect.Ptr:
		return resolveField(rv.Elem(), instance, name)
	case reflect.Map:
		key := reflect.ValueOf(name).Convert(rv.Type().Key())
		if !rv.MapIndex(key).IsValid() {
			return nil, &IllegalPropertyError{name: name, instance: instance}
		}
		return &mapHandle{m: rv, key: key}, nil
	}
	return nil, CheckInstance(instance)
}

func resolveField(s reflect.Value, instance interface{}, name string) (handle, error) {
	if err := funcs.CheckName(name); err != nil {
		return nil, &IllegalPropertyError{name: name, instance: instance, cause: err}
	}
	f := cache.Cache.Lookup(s.Type(), name)
	if !f.Found {
		return nil, &IllegalPropertyError{name: name, instance: instance}
	}
	fv, err := s.FieldByIndexErr(f.Index)
	if err != nil {
		// nil embedded pointer on the path to a promoted field
		return nil, &IllegalPropertyError{name: name, instance: instance, cause: err}
	}
	if !fv.CanSet() {
		// unexported field
		fv = reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem()
	}
	return &fieldHandle{v: fv}, nil
}

type fieldHandle struct {
	v reflect.Value
}

func (f *fieldHandle) get() reflect.Value {
	return f.v
}

func (f *fieldHandle) set(v reflect.Value) error {
	f.v.Set(v)
	return nil
}

func (f *fieldHandle) typ() reflect.Type {
	return f.v.Type()
}

type mapHandle struct {
	m, key reflect.Value
}

func (m *mapHandle) get() reflect.Value {
	return m.m.MapIndex(m.key)
}

func (m *mapHandle) set(v reflect.Value) error {
	m.m.SetMapIndex(m.key, v)
	return nil
}

func (m *mapHandle) typ() reflect.Type {
	return m.m.Type().Elem()
}

type holderHandle struct {
	h    Holder
	name string
}

func (h *holderHandle) get() reflect.Value {
	return reflect.ValueOf(h.h.Property(h.name))
}

func (h *holderHandle) set(v reflect.Value) error {
	if err := h.h.SetProperty(h.name, v.Interface()); err != nil {
		return errors.Wrapf(err, "setting property %q", h.name)
	}
	return nil
}

func (h *holderHandle) typ() reflect.Type {
	return emptyIfaceType
}
