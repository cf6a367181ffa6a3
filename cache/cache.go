package cache

import (
	"reflect"
	"sync"
)

// Field is a resolved struct field lookup. A miss is stored too, so repeated
// lookups of an unknown name don't walk the type again.
type Field struct {
	Index []int
	Type  reflect.Type
	Found bool
}

type fieldKey struct {
	typ  reflect.Type
	name string
}

type FieldCache struct {
	Enable bool
	data   sync.Map
}

func NewCache() *FieldCache {
	return &FieldCache{Enable: true}
}

var Cache = NewCache()

func (fc *FieldCache) Load(typ reflect.Type, name string) (f Field, ok bool) {
	v, ok := fc.data.Load(fieldKey{typ, name})
	if !ok {
		return
	}
	return v.(Field), true
}

func (fc *FieldCache) LoadOrStore(typ reflect.Type, name string, loader func(typ reflect.Type, name string) Field) Field {
	if fc.Enable {
		key := fieldKey{typ, name}
		v, ok := fc.data.Load(key)
		if !ok {
			f := loader(typ, name)
			fc.data.Store(key, f)
			return f
		}
		return v.(Field)
	}
	return loader(typ, name)
}

// Lookup resolves the named field of the struct type through the cache.
func (fc *FieldCache) Lookup(typ reflect.Type, name string) Field {
	return fc.LoadOrStore(typ, name, lookup)
}

func (fc *FieldCache) Len() (n int) {
	fc.data.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return
}

func (fc *FieldCache) Clear() {
	fc.data.Range(func(k, _ interface{}) bool {
		fc.data.Delete(k)
		return true
	})
}

func lookup(typ reflect.Type, name string) Field {
	sf, ok := typ.FieldByName(name)
	if !ok {
		return Field{}
	}
	return Field{Index: sf.Index, Type: sf.Type, Found: true}
}
