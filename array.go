package jupdate

import "iter"

// Array is an ordered sequence of values with copy-on-write ownership.
//
// An array either owns its backing slice, borrows a slice owned by the caller
// (BorrowArray) or shares a slice with its clones. Reads never copy. The first
// mutation of a borrowed or shared array copies the backing slice, so the
// other holders never observe it. Nested objects returned by At belong to the
// array and must not be modified in place.
type Array struct {
	elems    []Value
	borrowed bool
	shared   bool
}

// NewArray returns an array owning a copy of vs.
func NewArray(vs ...Value) *Array {
	elems := make([]Value, len(vs))
	for i, v := range vs {
		elems[i] = embed(v)
	}
	return &Array{elems: elems}
}

// BorrowArray returns an array aliasing vs. The caller keeps ownership of vs;
// the array copies it before its first mutation and whenever it is embedded
// in another container.
func BorrowArray(vs []Value) *Array {
	return &Array{elems: vs, borrowed: true}
}

// Kind returns KindArray.
func (a *Array) Kind() Kind { return KindArray }

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.elems) }

// At returns the i-th element. It panics if i is out of range.
func (a *Array) At(i int) Value {
	return normalize(a.elems[i])
}

// All iterates over index/value pairs.
func (a *Array) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, v := range a.elems {
			if !yield(i, normalize(v)) {
				return
			}
		}
	}
}

// Values returns a copy of the elements.
func (a *Array) Values() []Value {
	out := make([]Value, len(a.elems))
	for i, v := range a.elems {
		out[i] = normalize(v)
	}
	return out
}

// Owned reports whether the array holds a backing slice no one else sees.
func (a *Array) Owned() bool {
	return !a.borrowed && !a.shared
}

// Append adds vs at the end of the array.
func (a *Array) Append(vs ...Value) {
	a.makeOwned(len(vs))
	for _, v := range vs {
		a.elems = append(a.elems, embed(v))
	}
}

// Set replaces the i-th element. It panics if i is out of range.
func (a *Array) Set(i int, v Value) {
	_ = a.elems[i]
	a.makeOwned(0)
	a.elems[i] = embed(v)
}

// Clone returns an array with the same contents. A flat array of scalars is
// not copied until one of the two arrays is mutated; nested arrays get their
// own shared headers and nested objects are cloned.
func (a *Array) Clone() *Array {
	return a.share()
}

// share hands out a second reference to the backing slice. Borrowed data is
// copied right away since its owner may still write to it. Container
// elements are embedded one by one so the two arrays never hold the same
// nested *Array or *Object.
func (a *Array) share() *Array {
	if a.borrowed || hasContainers(a.elems) {
		return NewArray(a.elems...)
	}
	a.shared = true
	return &Array{elems: a.elems, shared: true}
}

func hasContainers(vs []Value) bool {
	for _, v := range vs {
		switch v.(type) {
		case *Array, *Object:
			return true
		}
	}
	return false
}

func (a *Array) makeOwned(extra int) {
	if a.Owned() {
		return
	}
	elems := make([]Value, len(a.elems), len(a.elems)+extra)
	for i, v := range a.elems {
		elems[i] = embed(v)
	}
	a.elems = elems
	a.borrowed = false
	a.shared = false
}
