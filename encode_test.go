package jupdate

import (
	"math"
	"testing"

	json "github.com/go-json-experiment/json"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshal(t *testing.T) {
	t.Run("keys are written in key order", func(t *testing.T) {
		o := NewObject()
		o.Set("b", Int32(2))
		o.Set("a", Int32(1))
		o.Set("$c", Int32(3))
		b, err := Marshal(o)
		require.NoError(t, err)
		require.Equal(t, `{"$c":3,"a":1,"b":2}`, string(b))
	})

	t.Run("every kind", func(t *testing.T) {
		o := NewObject()
		o.Set("n", Null{})
		o.Set("t", Bool(true))
		o.Set("i", Int32(-1))
		o.Set("l", Int64(1<<40))
		o.Set("u", Uint32(7))
		o.Set("w", Uint64(math.MaxUint64))
		o.Set("f", Float64(1.5))
		o.Set("s", String(`{$type:"date"}`))
		o.Set("a", NewArray(Int32(1), NewObject()))
		b, err := Marshal(o)
		require.NoError(t, err)
		require.Equal(t,
			`{"a":[1,{}],"f":1.5,"i":-1,"l":1099511627776,"n":null,"s":"{$type:\"date\"}","t":true,"u":7,"w":18446744073709551615}`,
			string(b))
	})

	t.Run("top level scalars", func(t *testing.T) {
		for _, tt := range []struct {
			v    Value
			want string
		}{
			{Null{}, `null`},
			{nil, `null`},
			{Int32(3), `3`},
			{String("x"), `"x"`},
			{NewArray(), `[]`},
		} {
			b, err := Marshal(tt.v)
			require.NoError(t, err)
			require.Equal(t, tt.want, string(b))
		}
	})

	t.Run("non-finite floats are rejected", func(t *testing.T) {
		o := NewObject()
		o.Set("x", Float64(math.NaN()))
		_, err := Marshal(o)
		require.Error(t, err)

		_, err = Marshal(NewArray(Float64(math.Inf(1))))
		require.Error(t, err)
	})

	t.Run("indent", func(t *testing.T) {
		o := NewObject()
		o.Object("$set").Set("a", Int32(1))
		b, err := MarshalIndent(o)
		require.NoError(t, err)
		require.JSONEq(t, `{"$set":{"a":1}}`, string(b))
		require.Contains(t, string(b), "\n  \"$set\":")
		require.Contains(t, string(b), "\n    \"a\":")
	})

	t.Run("json.Marshal uses the same encoding", func(t *testing.T) {
		o := NewObject()
		o.Set("k", NewArray(Null{}, Bool(false)))
		b, err := json.Marshal(o)
		require.NoError(t, err)
		require.Equal(t, `{"k":[null,false]}`, string(b))
	})
}

func TestString(t *testing.T) {
	o := NewObject()
	o.Set("a", NewArray(String("x")))
	require.Equal(t, `{"a":["x"]}`, o.String())

	bad := NewArray(Float64(math.NaN()))
	require.Contains(t, bad.String(), "%!(")
}

func TestMarshalYAML(t *testing.T) {
	o := NewObject()
	o.Set("z", Int32(1))
	o.Set("a", String("10"))
	o.Set("n", Null{})
	o.Set("f", Float64(0.25))
	o.Set("list", NewArray(Bool(true), Uint64(2)))
	o.Object("$set").Set("date", String(DateTypeMarker))

	b, err := yaml.Marshal(o)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(b, &got))
	require.Equal(t, map[string]any{
		"z":    1,
		"a":    "10",
		"n":    nil,
		"f":    0.25,
		"list": []any{true, 2},
		"$set": map[string]any{"date": DateTypeMarker},
	}, got)

	var node yaml.Node
	require.NoError(t, yaml.Unmarshal(b, &node))
	root := node.Content[0]
	var keys []string
	for i := 0; i < len(root.Content); i += 2 {
		keys = append(keys, root.Content[i].Value)
	}
	require.Equal(t, []string{"$set", "a", "f", "list", "n", "z"}, keys)
}
