package jupdate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObject_D(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		d := NewObject().D()
		require.Len(t, d, 0)
		require.NotNil(t, d)
	})

	t.Run("entries follow key order", func(t *testing.T) {
		o := NewObject()
		o.Set("third", Int32(3))
		o.Set("first", Int32(1))
		o.Set("second", Int32(2))
		require.Equal(t, D{
			{Key: "first", Value: int32(1)},
			{Key: "second", Value: int32(2)},
			{Key: "third", Value: int32(3)},
		}, o.D())
	})

	t.Run("values become native types", func(t *testing.T) {
		nested := NewObject()
		nested.Set("k", String("v"))
		o := NewObject()
		o.Set("a_null", Null{})
		o.Set("b_bool", Bool(true))
		o.Set("c_i32", Int32(-1))
		o.Set("d_i64", Int64(-2))
		o.Set("e_u32", Uint32(3))
		o.Set("f_u64", Uint64(4))
		o.Set("g_f64", Float64(0.5))
		o.Set("h_str", String("s"))
		o.Set("i_arr", NewArray(Int32(1), nested))
		o.Set("j_obj", nested)

		require.Equal(t, D{
			{Key: "a_null", Value: nil},
			{Key: "b_bool", Value: true},
			{Key: "c_i32", Value: int32(-1)},
			{Key: "d_i64", Value: int64(-2)},
			{Key: "e_u32", Value: uint32(3)},
			{Key: "f_u64", Value: uint64(4)},
			{Key: "g_f64", Value: 0.5},
			{Key: "h_str", Value: "s"},
			{Key: "i_arr", Value: A{int32(1), D{{Key: "k", Value: "v"}}}},
			{Key: "j_obj", Value: D{{Key: "k", Value: "v"}}},
		}, o.D())
	})
}

func TestD_Lookup(t *testing.T) {
	d := D{{Key: "a", Value: 1}, {Key: "b", Value: nil}}

	v, ok := d.Lookup("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	v, ok = d.Lookup("b")
	require.True(t, ok)
	require.Nil(t, v)

	_, ok = d.Lookup("c")
	require.False(t, ok)
}

func TestNative(t *testing.T) {
	require.Nil(t, Native(nil))
	require.Equal(t, A{}, Native(NewArray()))
	require.Equal(t, "x", Native(String("x")))
}
