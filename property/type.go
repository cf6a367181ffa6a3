package property

import (
	"reflect"
	"strconv"
	"strings"
)

// Type is the value type a property accepts on write.
type Type uint8

const (
	Any Type = iota
	Boolean
	Integer
	Float
	String
	Array
	Object
)

var typeNames = [...]string{
	Any:     "any",
	Boolean: "boolean",
	Integer: "integer",
	Float:   "float",
	String:  "string",
	Array:   "array",
	Object:  "object",
}

var typeTags = map[string]Type{
	"any":     Any,
	"mixed":   Any,
	"boolean": Boolean,
	"bool":    Boolean,
	"integer": Integer,
	"int":     Integer,
	"float":   Float,
	"double":  Float,
	"string":  String,
	"array":   Array,
	"object":  Object,
}

// ParseType returns the Type for a tag. Aliases are normalized: "bool",
// "int", "double" and "mixed" stand for boolean, integer, float and any.
func ParseType(tag string) (Type, error) {
	if t, ok := typeTags[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return t, nil
	}
	return Any, invalidArgument("type", "unknown type %q", tag)
}

// MustParseType is like ParseType but panics if the tag is unknown.
func MustParseType(tag string) Type {
	t, err := ParseType(tag)
	if err != nil {
		panic(err)
	}
	return t
}

// Valid reports whether t is one of the declared types.
func (t Type) Valid() bool {
	return int(t) < len(typeNames)
}

func (t Type) String() string {
	if t.Valid() {
		return typeNames[t]
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// TypeOf returns the Type matching the dynamic type of v. Values without a
// matching tag (nil, complex numbers) report Any.
func TypeOf(v interface{}) Type {
	if v == nil {
		return Any
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool:
		return Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Integer
	case reflect.Float32, reflect.Float64:
		return Float
	case reflect.String:
		return String
	case reflect.Slice, reflect.Array, reflect.Map:
		return Array
	case reflect.Struct, reflect.Ptr, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return Object
	}
	return Any
}

// Accepts reports whether v is exactly of type t. No numeric widening is
// done: Integer rejects floats and Float rejects integers.
func (t Type) Accepts(v interface{}) bool {
	return t == Any || TypeOf(v) == t
}
