package jupdate

// UpdateArray is a cursor for array operators on a single field.
//
// An operator slot holds either a bare value (Push, AddToSet) or the wrapped
// {"$each": [...], ...} form (PushAll, PushAt, Slice, Sort, AddAllToSet),
// never both. Operations needing the wrapped form drop a bare value found in
// the slot; bare writes replace whatever the slot holds.
type UpdateArray struct {
	u     *Update
	field string
}

// Name returns the field the cursor writes to.
func (a UpdateArray) Name() string { return a.field }

// Field moves the chain to a scalar field.
func (a UpdateArray) Field(name string) UpdateField { return a.u.Field(name) }

// Array moves the chain to another array field.
func (a UpdateArray) Array(name string) UpdateArray { return a.u.Array(name) }

// Update returns the update the cursor writes to.
func (a UpdateArray) Update() *Update { return a.u }

// Push appends v ($push). The value is written bare, without "$each".
func (a UpdateArray) Push(v Value) UpdateArray {
	a.u.group(OpPush).Set(a.field, v)
	return a
}

// PushAt inserts v at position. Positions always use the wrapped form.
func (a UpdateArray) PushAt(v Value, position int32) UpdateArray {
	return a.PushAllAt([]Value{v}, position)
}

// PushAllAt inserts values at position.
func (a UpdateArray) PushAllAt(values []Value, position int32) UpdateArray {
	slot := a.u.each(OpPush, a.field)
	slot.Set(ModEach, BorrowArray(values))
	slot.Set(ModPosition, Int32(position))
	return a
}

// PushAll appends values, in order.
func (a UpdateArray) PushAll(values []Value) UpdateArray {
	a.u.each(OpPush, a.field).Set(ModEach, BorrowArray(values))
	return a
}

// Slice limits the array to limit elements after the push. A negative limit keeps
// the last elements.
func (a UpdateArray) Slice(limit int32) UpdateArray {
	a.pushSlot().Set(ModSlice, Int32(limit))
	return a
}

// Sort orders the elements ascending after the push.
func (a UpdateArray) Sort() UpdateArray {
	a.pushSlot().Set(ModSort, Ascending)
	return a
}

// RevSort orders the elements descending after the push.
func (a UpdateArray) RevSort() UpdateArray {
	a.pushSlot().Set(ModSort, Descending)
	return a
}

// SortBy orders embedded documents by key, ascending.
func (a UpdateArray) SortBy(key string) UpdateArray {
	return a.sortBy(key, Ascending)
}

// RevSortBy orders embedded documents by key, descending.
func (a UpdateArray) RevSortBy(key string) UpdateArray {
	return a.sortBy(key, Descending)
}

// Pull removes every element equal to v ($pull).
func (a UpdateArray) Pull(v Value) UpdateArray {
	a.u.group(OpPull).Set(a.field, v)
	return a
}

// PullAll removes every element equal to one of values ($pullAll).
func (a UpdateArray) PullAll(values []Value) UpdateArray {
	a.u.group(OpPullAll).Set(a.field, BorrowArray(values))
	return a
}

// PopFront removes the first element.
func (a UpdateArray) PopFront() UpdateArray {
	a.u.group(OpPop).Set(a.field, Int32(-1))
	return a
}

// PopBack removes the last element.
func (a UpdateArray) PopBack() UpdateArray {
	a.u.group(OpPop).Set(a.field, Int32(1))
	return a
}

// AddToSet appends v unless already present ($addToSet).
func (a UpdateArray) AddToSet(v Value) UpdateArray {
	a.u.group(OpAddToSet).Set(a.field, v)
	return a
}

// AddAllToSet appends each of values not already present.
func (a UpdateArray) AddAllToSet(values []Value) UpdateArray {
	a.u.each(OpAddToSet, a.field).Set(ModEach, BorrowArray(values))
	return a
}

func (a UpdateArray) sortBy(key string, dir Int32) UpdateArray {
	order := NewObject()
	order.Set(key, dir)
	a.pushSlot().Set(ModSort, order)
	return a
}

// pushSlot returns the wrapped $push slot, with an empty "$each" when none
// was recorded yet.
func (a UpdateArray) pushSlot() *Object {
	slot := a.u.each(OpPush, a.field)
	if !slot.Has(ModEach) {
		slot.Set(ModEach, NewArray())
	}
	return slot
}
