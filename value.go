package jupdate

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt32
	KindInt64
	KindUint32
	KindUint64
	KindFloat64
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindNull:    "null",
	KindBool:    "bool",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat64: "float64",
	KindString:  "string",
	KindArray:   "array",
	KindObject:  "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Value is a document value. The set of implementations is closed: Null, Bool,
// Int32, Int64, Uint32, Uint64, Float64, String, *Array and *Object.
type Value interface {
	Kind() Kind
	isValue()
}

// Numeric is a Value accepted by arithmetic operators ($inc, $mul).
type Numeric interface {
	Value
	isNumeric()
}

// Integral is a Value accepted by bitwise operators ($bit).
type Integral interface {
	Numeric
	isIntegral()
}

type (
	Null    struct{}
	Bool    bool
	Int32   int32
	Int64   int64
	Uint32  uint32
	Uint64  uint64
	Float64 float64
	String  string
)

func (Null) Kind() Kind    { return KindNull }
func (Bool) Kind() Kind    { return KindBool }
func (Int32) Kind() Kind   { return KindInt32 }
func (Int64) Kind() Kind   { return KindInt64 }
func (Uint32) Kind() Kind  { return KindUint32 }
func (Uint64) Kind() Kind  { return KindUint64 }
func (Float64) Kind() Kind { return KindFloat64 }
func (String) Kind() Kind  { return KindString }

func (Null) isValue()    {}
func (Bool) isValue()    {}
func (Int32) isValue()   {}
func (Int64) isValue()   {}
func (Uint32) isValue()  {}
func (Uint64) isValue()  {}
func (Float64) isValue() {}
func (String) isValue()  {}
func (*Array) isValue()  {}
func (*Object) isValue() {}

func (Int32) isNumeric()   {}
func (Int64) isNumeric()   {}
func (Uint32) isNumeric()  {}
func (Uint64) isNumeric()  {}
func (Float64) isNumeric() {}

func (Int32) isIntegral()  {}
func (Int64) isIntegral()  {}
func (Uint32) isIntegral() {}
func (Uint64) isIntegral() {}

// Integer is the set of native Go integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number is the set of native Go numeric types.
type Number interface {
	Integer | ~float32 | ~float64
}

// Int converts a native integer to a lossless integer variant of the same
// signedness. int8, int16, uint8 and uint16 widen to the 32-bit variants;
// int, uint and uintptr map to the 64-bit variants. Named integer types
// (type offset int16) always map to the 64-bit variants.
func Int[N Integer](n N) Integral {
	if v, ok := basicInt(n); ok {
		return v
	}
	// named integer type
	if N(0)-1 < 0 {
		return Int64(int64(n))
	}
	return Uint64(uint64(n))
}

// Num converts any native number to its matching variant. Floats become
// Float64; integers follow Int.
func Num[N Number](n N) Numeric {
	switch v := any(n).(type) {
	case float32:
		return Float64(v)
	case float64:
		return Float64(v)
	}
	if v, ok := basicInt(n); ok {
		return v
	}
	// only floats keep a fractional half
	if N(1)/2 != 0 {
		return Float64(float64(n))
	}
	if N(0)-1 < 0 {
		return Int64(int64(n))
	}
	return Uint64(uint64(n))
}

func basicInt(n any) (Integral, bool) {
	switch v := n.(type) {
	case int8:
		return Int32(v), true
	case int16:
		return Int32(v), true
	case int32:
		return Int32(v), true
	case int64:
		return Int64(v), true
	case int:
		return Int64(v), true
	case uint8:
		return Uint32(v), true
	case uint16:
		return Uint32(v), true
	case uint32:
		return Uint32(v), true
	case uint64:
		return Uint64(v), true
	case uint:
		return Uint64(v), true
	case uintptr:
		return Uint64(v), true
	}
	return nil, false
}

// Of wraps a native Go value. Supported inputs are nil, bool, string, every
// native number, []Value and the Value implementations themselves. The second
// result is false for anything else.
func Of(v any) (Value, bool) {
	switch t := v.(type) {
	case nil:
		return Null{}, true
	case Value:
		return t, true
	case bool:
		return Bool(t), true
	case string:
		return String(t), true
	case float32:
		return Float64(t), true
	case float64:
		return Float64(t), true
	case []Value:
		return NewArray(t...), true
	}
	return basicInt(v)
}

// Equal reports whether a and b hold the same variant with the same contents.
// A nil Value, *Array or *Object equals Null{}.
func Equal(a, b Value) bool {
	a, b = normalize(a), normalize(b)
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case *Array:
		bv := b.(*Array)
		if av.Len() != bv.Len() {
			return false
		}
		for i, e := range av.All() {
			if !Equal(e, bv.At(i)) {
				return false
			}
		}
		return true
	case *Object:
		bv := b.(*Object)
		if av.Len() != bv.Len() {
			return false
		}
		for k, e := range av.All() {
			other, ok := bv.Get(k)
			if !ok || !Equal(e, other) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func normalize(v Value) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case *Array:
		if t == nil {
			return Null{}
		}
	case *Object:
		if t == nil {
			return Null{}
		}
	}
	return v
}

// embed returns the form of v that is safe to store inside a container: nil
// becomes Null, arrays are shared (or copied when borrowed) and objects are
// deep-cloned.
func embed(v Value) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case *Array:
		if t == nil {
			return Null{}
		}
		return t.share()
	case *Object:
		if t == nil {
			return Null{}
		}
		return t.Clone()
	default:
		return v
	}
}
