package utils

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/vjeantet/jodaTime"
)

// TimeLayout is the Joda layout used to render time values in diagnostics.
var TimeLayout = "YYYY-MM-dd HH:mm:ss.SSSZZ"

// Describe renders v for error messages. Scalars are printed with their type,
// composite values with their type only.
func Describe(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(t)
	case time.Time:
		return "time.Time(" + jodaTime.Format(TimeLayout, t) + ")"
	case *time.Time:
		if t == nil {
			return "*time.Time(nil)"
		}
		return "*time.Time(" + jodaTime.Format(TimeLayout, *t) + ")"
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		return rv.Type().String()
	case reflect.Ptr, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return fmt.Sprintf("%T(nil)", v)
		}
		return fmt.Sprintf("%T(%#x)", v, rv.Pointer())
	}
	return fmt.Sprintf("%T(%v)", v, v)
}
