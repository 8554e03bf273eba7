package jupdate

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"gopkg.in/yaml.v3"
)

// Marshal renders v as compact JSON. Object keys are written in ascending key
// order, so the output only depends on the contents of v.
func Marshal(v Value, opts ...json.Options) ([]byte, error) {
	b, err := json.Marshal(normalize(v), opts...)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", normalize(v).Kind(), err)
	}
	return b, nil
}

// MarshalIndent renders v as indented JSON, for humans.
func MarshalIndent(v Value) ([]byte, error) {
	return Marshal(v, jsontext.WithIndent("  "))
}

func (Null) MarshalJSONTo(enc *jsontext.Encoder) error { return enc.WriteToken(jsontext.Null) }

func (o *Object) MarshalJSONTo(enc *jsontext.Encoder) error { return encodeValue(enc, o) }

func (a *Array) MarshalJSONTo(enc *jsontext.Encoder) error { return encodeValue(enc, a) }

func encodeValue(enc *jsontext.Encoder, v Value) error {
	switch t := normalize(v).(type) {
	case Null:
		return enc.WriteToken(jsontext.Null)
	case Bool:
		return enc.WriteToken(jsontext.Bool(bool(t)))
	case Int32:
		return enc.WriteToken(jsontext.Int(int64(t)))
	case Int64:
		return enc.WriteToken(jsontext.Int(int64(t)))
	case Uint32:
		return enc.WriteToken(jsontext.Uint(uint64(t)))
	case Uint64:
		return enc.WriteToken(jsontext.Uint(uint64(t)))
	case Float64:
		f := float64(t)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("unsupported float value %v", f)
		}
		return enc.WriteToken(jsontext.Float(f))
	case String:
		return enc.WriteToken(jsontext.String(string(t)))
	case *Array:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return fmt.Errorf("write array open: %w", err)
		}
		for i, e := range t.All() {
			if err := encodeValue(enc, e); err != nil {
				return fmt.Errorf("write array element %d: %w", i, err)
			}
		}
		if err := enc.WriteToken(jsontext.EndArray); err != nil {
			return fmt.Errorf("write array close: %w", err)
		}
		return nil
	case *Object:
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return fmt.Errorf("write object open: %w", err)
		}
		for k, e := range t.All() {
			if err := enc.WriteToken(jsontext.String(k)); err != nil {
				return fmt.Errorf("write object key %q: %w", k, err)
			}
			if err := encodeValue(enc, e); err != nil {
				return fmt.Errorf("write object value for key %q: %w", k, err)
			}
		}
		if err := enc.WriteToken(jsontext.EndObject); err != nil {
			return fmt.Errorf("write object close: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown value kind %s", v.Kind())
}

func (o *Object) String() string { return debugString(o) }

func (a *Array) String() string { return debugString(a) }

func debugString(v Value) string {
	b, err := Marshal(v)
	if err != nil {
		return "%!(" + err.Error() + ")"
	}
	return string(b)
}

func (Null) MarshalYAML() (any, error) { return yamlNode(Null{}), nil }

func (o *Object) MarshalYAML() (any, error) { return yamlNode(o), nil }

func (a *Array) MarshalYAML() (any, error) { return yamlNode(a), nil }

// yamlNode builds the YAML node tree of v. Mapping keys keep ascending order.
func yamlNode(v Value) *yaml.Node {
	scalar := func(tag, s string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: s}
	}
	switch t := normalize(v).(type) {
	case Null:
		return scalar("!!null", "null")
	case Bool:
		return scalar("!!bool", strconv.FormatBool(bool(t)))
	case Int32:
		return scalar("!!int", strconv.FormatInt(int64(t), 10))
	case Int64:
		return scalar("!!int", strconv.FormatInt(int64(t), 10))
	case Uint32:
		return scalar("!!int", strconv.FormatUint(uint64(t), 10))
	case Uint64:
		return scalar("!!int", strconv.FormatUint(uint64(t), 10))
	case Float64:
		f := float64(t)
		switch {
		case math.IsNaN(f):
			return scalar("!!float", ".nan")
		case math.IsInf(f, 1):
			return scalar("!!float", ".inf")
		case math.IsInf(f, -1):
			return scalar("!!float", "-.inf")
		}
		return scalar("!!float", strconv.FormatFloat(f, 'g', -1, 64))
	case String:
		return scalar("!!str", string(t))
	case *Array:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range t.All() {
			n.Content = append(n.Content, yamlNode(e))
		}
		return n
	case *Object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for k, e := range t.All() {
			n.Content = append(n.Content, scalar("!!str", k), yamlNode(e))
		}
		return n
	}
	panic("jupdate: unknown value kind " + v.Kind().String())
}
