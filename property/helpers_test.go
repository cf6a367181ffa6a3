package property

import "time"

type embedded struct {
	Depth interface{}
}

type object struct {
	*embedded
	someBoolean interface{}
	someInteger interface{}
	SomeFloat   interface{}
	someString  interface{}
	someObject  interface{}
	SomeArray   interface{}

	privateValue interface{}
	PublicValue  interface{}

	count   int
	enabled bool
	seats   *int
	when    *time.Time
}

func (o *object) PrivateValue() interface{} {
	return o.privateValue
}

type holder struct {
	props map[string]interface{}
	err   error
}

func (h *holder) HasProperty(name string) bool {
	_, ok := h.props[name]
	return ok
}

func (h *holder) Property(name string) interface{} {
	return h.props[name]
}

func (h *holder) SetProperty(name string, value interface{}) error {
	if h.err != nil {
		return h.err
	}
	h.props[name] = value
	return nil
}

type typedValue struct {
	typ      Type
	property string
	value    interface{}
}

// oneOfEachType returns a non-nil value of every type with the property of
// object meant to hold it.
func oneOfEachType() []typedValue {
	return []typedValue{
		{Boolean, "someBoolean", true},
		{Integer, "someInteger", 42},
		{Float, "SomeFloat", 3.14},
		{String, "someString", "foo"},
		{Object, "someObject", &object{}},
		{Array, "SomeArray", []interface{}{"rab", true, 42, "test"}},
	}
}
