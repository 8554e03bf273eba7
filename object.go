package jupdate

import (
	"iter"

	"github.com/emirpasic/gods/maps/treemap"
)

// Object is a mapping from unique string keys to values, kept sorted by key.
// Iteration and rendering follow key order, never insertion order. The zero
// value is an empty object ready to use.
type Object struct {
	tree *treemap.Map
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{tree: treemap.NewWithStringComparator()}
}

// Kind returns KindObject.
func (o *Object) Kind() Kind { return KindObject }

func (o *Object) entries() *treemap.Map {
	if o.tree == nil {
		o.tree = treemap.NewWithStringComparator()
	}
	return o.tree
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o.tree == nil {
		return 0
	}
	return o.tree.Size()
}

// Get returns the value stored at key.
func (o *Object) Get(key string) (Value, bool) {
	if o.tree == nil {
		return nil, false
	}
	v, ok := o.tree.Get(key)
	if !ok {
		return nil, false
	}
	return v.(Value), true
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set stores v at key, replacing any previous value. Arrays are shared
// copy-on-write and objects are deep-copied, so later changes to v made
// through the caller's reference do not reach o.
func (o *Object) Set(key string, v Value) {
	o.entries().Put(key, embed(v))
}

// Delete removes key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	if !o.Has(key) {
		return false
	}
	o.tree.Remove(key)
	return true
}

// Keys returns the keys in ascending order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	for k := range o.All() {
		keys = append(keys, k)
	}
	return keys
}

// All iterates over key/value pairs in ascending key order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o.tree == nil {
			return
		}
		it := o.tree.Iterator()
		for it.Next() {
			if !yield(it.Key().(string), it.Value().(Value)) {
				return
			}
		}
	}
}

// Clone returns a deep copy of o. Nested arrays are shared copy-on-write.
func (o *Object) Clone() *Object {
	out := NewObject()
	for k, v := range o.All() {
		out.tree.Put(k, embed(v))
	}
	return out
}

// evictFunc observes a value discarded by one of the upsert operations.
type evictFunc func(key string, old Value)

// Object returns the object stored at key, creating it when missing.
//
// Repeated calls with the same key return the same object. When key holds a
// value of any other kind, that value is discarded and replaced by a new empty
// object. This is how operator groups such as "$inc" are shared by many
// fields without the caller creating them first.
func (o *Object) Object(key string) *Object {
	return o.upsert(key, nil)
}

// DeepObject is Object(outer).Object(inner), used for two-level operator
// groups like {"$bit": {"<field>": {...}}}.
func (o *Object) DeepObject(outer, inner string) *Object {
	return o.deepUpsert(outer, inner, nil)
}

// EachSlot returns the object at outer.field that holds "$each" style
// modifiers. A non-object value previously stored at outer.field (a bare
// single-value push, for example) is removed first, so only the wrapped form
// survives.
func (o *Object) EachSlot(outer, field string) *Object {
	return o.eachSlot(outer, field, nil)
}

func (o *Object) upsert(key string, evicted evictFunc) *Object {
	m := o.entries()
	if v, ok := m.Get(key); ok {
		if obj, ok := v.(*Object); ok {
			return obj
		}
		if evicted != nil {
			evicted(key, v.(Value))
		}
	}
	obj := NewObject()
	m.Put(key, obj)
	return obj
}

func (o *Object) deepUpsert(outer, inner string, evicted evictFunc) *Object {
	return o.upsert(outer, evicted).upsert(inner, evicted)
}

func (o *Object) eachSlot(outer, field string, evicted evictFunc) *Object {
	group := o.upsert(outer, evicted)
	if v, ok := group.Get(field); ok && v.Kind() != KindObject {
		if evicted != nil {
			evicted(field, v)
		}
		group.Delete(field)
	}
	return group.upsert(field, evicted)
}
