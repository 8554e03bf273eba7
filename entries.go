package jupdate

// D is the export form of an Object: an ordered collection of key-value pairs
// holding native Go values, the shape document-store drivers accept. Entries
// are in ascending key order.
type D []E

// A is the export form of an Array.
type A []any

// E is a single entry of a D.
type E struct {
	Key   string
	Value any
}

// D converts o to its export form. Scalars become their native Go types
// (int32, uint64, string, ...), Null becomes nil, nested objects become D and
// arrays become A.
func (o *Object) D() D {
	d := make(D, 0, o.Len())
	for k, v := range o.All() {
		d = append(d, E{Key: k, Value: Native(v)})
	}
	return d
}

// A converts a to its export form.
func (a *Array) A() A {
	out := make(A, 0, a.Len())
	for _, v := range a.All() {
		out = append(out, Native(v))
	}
	return out
}

// Native returns the plain Go representation of v.
func Native(v Value) any {
	switch t := normalize(v).(type) {
	case Null:
		return nil
	case Bool:
		return bool(t)
	case Int32:
		return int32(t)
	case Int64:
		return int64(t)
	case Uint32:
		return uint32(t)
	case Uint64:
		return uint64(t)
	case Float64:
		return float64(t)
	case String:
		return string(t)
	case *Array:
		return t.A()
	case *Object:
		return t.D()
	}
	panic("jupdate: unknown value kind " + v.Kind().String())
}

// Lookup returns the value stored under key.
func (d D) Lookup(key string) (any, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}
