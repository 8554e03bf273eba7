package jupdate

// UpdateField is a cursor for operators on a single field. Writing an
// operator twice on the same field keeps the last value.
type UpdateField struct {
	u     *Update
	field string
}

// Name returns the field the cursor writes to.
func (f UpdateField) Name() string { return f.field }

// Field moves the chain to another field.
func (f UpdateField) Field(name string) UpdateField { return f.u.Field(name) }

// Array moves the chain to an array field.
func (f UpdateField) Array(name string) UpdateArray { return f.u.Array(name) }

// Update returns the update the cursor writes to.
func (f UpdateField) Update() *Update { return f.u }

// Increment adds amount to the field ($inc).
func (f UpdateField) Increment(amount Numeric) UpdateField {
	return f.modifier(OpInc, amount)
}

// Inc is Increment.
func (f UpdateField) Inc(amount Numeric) UpdateField { return f.Increment(amount) }

// Multiply multiplies the field by amount ($mul).
func (f UpdateField) Multiply(amount Numeric) UpdateField {
	return f.modifier(OpMul, amount)
}

// Mul is Multiply.
func (f UpdateField) Mul(amount Numeric) UpdateField { return f.Multiply(amount) }

// Min keeps the smaller of the stored value and v ($min).
func (f UpdateField) Min(v Value) UpdateField { return f.modifier(OpMin, v) }

// Max keeps the larger of the stored value and v ($max).
func (f UpdateField) Max(v Value) UpdateField { return f.modifier(OpMax, v) }

// And applies a bitwise and with bits ($bit).
func (f UpdateField) And(bits Integral) UpdateField { return f.bit(BitAnd, bits) }

// Or applies a bitwise or with bits ($bit).
func (f UpdateField) Or(bits Integral) UpdateField { return f.bit(BitOr, bits) }

// Xor applies a bitwise xor with bits ($bit).
func (f UpdateField) Xor(bits Integral) UpdateField { return f.bit(BitXor, bits) }

// Set replaces the field with v ($set).
func (f UpdateField) Set(v Value) UpdateField { return f.modifier(OpSet, v) }

// Unset removes the field. The operator value is an empty string.
func (f UpdateField) Unset() UpdateField { return f.modifier(OpUnset, String("")) }

// Rename renames the field to name.
func (f UpdateField) Rename(name string) UpdateField {
	return f.modifier(OpRename, String(name))
}

// SetOnInsert sets the field only when the update inserts a new document.
func (f UpdateField) SetOnInsert(v Value) UpdateField {
	return f.modifier(OpSetOnInsert, v)
}

// SetDateNow sets the field to the current date on the server.
func (f UpdateField) SetDateNow() UpdateField {
	return f.modifier(OpCurrentDate, f.u.typeMarker("date", DateTypeMarker))
}

// SetTimestampNow sets the field to the current timestamp on the server.
func (f UpdateField) SetTimestampNow() UpdateField {
	return f.modifier(OpCurrentDate, f.u.typeMarker("timestamp", TimestampTypeMarker))
}

func (f UpdateField) modifier(op string, v Value) UpdateField {
	f.u.group(op).Set(f.field, v)
	return f
}

// bit writes {"$bit": {field: {op: bits}}}. Different bitwise operators on the
// same field accumulate.
func (f UpdateField) bit(op string, bits Integral) UpdateField {
	f.u.deep(OpBit, f.field).Set(op, bits)
	return f
}
