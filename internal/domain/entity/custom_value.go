package entity

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// ValueType tags the primitive carried by a CustomValue.
type ValueType string

const (
	ValueString ValueType = "string"
	ValueInt    ValueType = "int"
	ValueFloat  ValueType = "float"
	ValueBool   ValueType = "bool"
)

// CustomValue is a tagged primitive stored in a panel's custom data.
// Accessors report a type mismatch instead of failing.
type CustomValue struct {
	typ ValueType
	s   string
	i   int64
	f   float64
	b   bool
}

// StringValue wraps a string.
func StringValue(v string) CustomValue { return CustomValue{typ: ValueString, s: v} }

// IntValue wraps an integer.
func IntValue(v int) CustomValue { return CustomValue{typ: ValueInt, i: int64(v)} }

// FloatValue wraps a float.
func FloatValue(v float64) CustomValue { return CustomValue{typ: ValueFloat, f: v} }

// BoolValue wraps a bool.
func BoolValue(v bool) CustomValue { return CustomValue{typ: ValueBool, b: v} }

// Type returns the value's tag. The zero CustomValue has an empty tag.
func (v CustomValue) Type() ValueType { return v.typ }

// AsString returns the string payload.
func (v CustomValue) AsString() (string, bool) { return v.s, v.typ == ValueString }

// AsInt returns the int payload.
func (v CustomValue) AsInt() (int, bool) { return int(v.i), v.typ == ValueInt }

// AsFloat returns the float payload.
func (v CustomValue) AsFloat() (float64, bool) { return v.f, v.typ == ValueFloat }

// AsBool returns the bool payload.
func (v CustomValue) AsBool() (bool, bool) { return v.b, v.typ == ValueBool }

// String renders the payload without its tag.
func (v CustomValue) String() string {
	switch v.typ {
	case ValueString:
		return v.s
	case ValueInt:
		return strconv.FormatInt(v.i, 10)
	case ValueFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case ValueBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// ParseCustomValue rebuilds a value from its tag and the text produced by
// String.
func ParseCustomValue(t ValueType, text string) (CustomValue, error) {
	switch t {
	case ValueString:
		return StringValue(text), nil
	case ValueInt:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return CustomValue{}, fmt.Errorf("parse int custom value: %w", err)
		}
		return CustomValue{typ: ValueInt, i: i}, nil
	case ValueFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return CustomValue{}, fmt.Errorf("parse float custom value: %w", err)
		}
		return FloatValue(f), nil
	case ValueBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return CustomValue{}, fmt.Errorf("parse bool custom value: %w", err)
		}
		return BoolValue(b), nil
	default:
		return CustomValue{}, fmt.Errorf("parse custom value: unknown type %q", t)
	}
}

type customValueJSON struct {
	Type  ValueType       `json:"type"`
	Value json.RawMessage `json:"value"`
}

// MarshalJSON encodes the value as {"type": ..., "value": ...}.
func (v CustomValue) MarshalJSON() ([]byte, error) {
	var payload any
	switch v.typ {
	case ValueString:
		payload = v.s
	case ValueInt:
		payload = v.i
	case ValueFloat:
		payload = v.f
	case ValueBool:
		payload = v.b
	default:
		return nil, fmt.Errorf("marshal custom value: empty type")
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(customValueJSON{Type: v.typ, Value: raw})
}

// UnmarshalJSON decodes the {"type": ..., "value": ...} form.
func (v *CustomValue) UnmarshalJSON(data []byte) error {
	var wire customValueJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("unmarshal custom value: %w", err)
	}
	var err error
	switch wire.Type {
	case ValueString:
		var s string
		err = json.Unmarshal(wire.Value, &s)
		*v = StringValue(s)
	case ValueInt:
		var i int64
		err = json.Unmarshal(wire.Value, &i)
		*v = CustomValue{typ: ValueInt, i: i}
	case ValueFloat:
		var f float64
		err = json.Unmarshal(wire.Value, &f)
		*v = FloatValue(f)
	case ValueBool:
		var b bool
		err = json.Unmarshal(wire.Value, &b)
		*v = BoolValue(b)
	default:
		return fmt.Errorf("unmarshal custom value: unknown type %q", wire.Type)
	}
	if err != nil {
		return fmt.Errorf("unmarshal custom value of type %s: %w", wire.Type, err)
	}
	return nil
}

// CustomData is the kind-specific persisted state of a panel.
type CustomData map[string]CustomValue

// Keys returns the keys in sorted order.
func (d CustomData) Keys() []string {
	return slices.Sorted(maps.Keys(d))
}

// Clone returns a shallow copy.
func (d CustomData) Clone() CustomData {
	if d == nil {
		return nil
	}
	return maps.Clone(d)
}

// String returns the string at key, if present with that type.
func (d CustomData) String(key string) (string, bool) {
	v, ok := d[key]
	if !ok {
		return "", false
	}
	return v.AsString()
}

// Int returns the int at key, if present with that type.
func (d CustomData) Int(key string) (int, bool) {
	v, ok := d[key]
	if !ok {
		return 0, false
	}
	return v.AsInt()
}

// Float returns the float at key, if present with that type.
func (d CustomData) Float(key string) (float64, bool) {
	v, ok := d[key]
	if !ok {
		return 0, false
	}
	return v.AsFloat()
}

// Bool returns the bool at key, if present with that type.
func (d CustomData) Bool(key string) (bool, bool) {
	v, ok := d[key]
	if !ok {
		return false, false
	}
	return v.AsBool()
}
