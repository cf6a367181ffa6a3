package utils

import (
	"strings"
	"testing"
	"time"
)

func TestDescribe(t *testing.T) {
	var nilPtr *int
	tests := []struct {
		name string
		v    interface{}
		want string
	}{
		{name: "nil", v: nil, want: "nil"},
		{name: "string", v: "foo", want: `"foo"`},
		{name: "int", v: 42, want: "int(42)"},
		{name: "float", v: 3.14, want: "float64(3.14)"},
		{name: "bool", v: true, want: "bool(true)"},
		{name: "slice", v: []int{1, 2}, want: "[]int"},
		{name: "map", v: map[string]int{}, want: "map[string]int"},
		{name: "struct", v: struct{ A int }{}, want: "struct { A int }"},
		{name: "nil pointer", v: nilPtr, want: "*int(nil)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.v); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescribeTime(t *testing.T) {
	tm := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	for _, v := range []interface{}{tm, &tm} {
		got := Describe(v)
		if !strings.Contains(got, "2020-01-02 03:04:05") {
			t.Errorf("Describe(%T) = %q, want the formatted date", v, got)
		}
	}
}

func TestDescribePointer(t *testing.T) {
	x := 1
	if got := Describe(&x); !strings.HasPrefix(got, "*int(0x") {
		t.Errorf("Describe(&x) = %q", got)
	}
}
