package monitoring

import "strconv"

// ValueKind enumerates the kinds a Value can hold.
type ValueKind uint8

const (
	KindInvalid ValueKind = iota
	KindString
	KindInt
	KindFloat
	KindBool
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Value is an attribute value: a string, a number or a boolean.
// The zero Value is invalid.
type Value struct {
	kind ValueKind
	s    string
	i    int64
	f    float64
	b    bool
}

func StringValue(v string) Value { return Value{kind: KindString, s: v} }
func IntValue(v int64) Value     { return Value{kind: KindInt, i: v} }
func FloatValue(v float64) Value { return Value{kind: KindFloat, f: v} }
func BoolValue(v bool) Value     { return Value{kind: KindBool, b: v} }
func (v Value) Kind() ValueKind  { return v.kind }
func (v Value) IsValid() bool    { return v.kind != KindInvalid }
func (v Value) IsNumber() bool   { return v.kind == KindInt || v.kind == KindFloat }

// AsString returns the string held by v and whether v is a string.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsInt returns the integer held by v and whether v is an integer.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns v as float64. Integers are converted.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// AsBool returns the boolean held by v and whether v is a boolean.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// Interface returns the held value as string, int64, float64 or bool; nil when invalid.
// Encoders use it to marshal snapshots.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// String returns a display form of the value.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return "<invalid>"
	}
}

// Attribute is one named value of a snapshot.
type Attribute struct {
	Name  string
	Value Value
}

// String, Int, Float and Bool build attributes of the matching kind.
func String(name, v string) Attribute        { return Attribute{Name: name, Value: StringValue(v)} }
func Int(name string, v int64) Attribute     { return Attribute{Name: name, Value: IntValue(v)} }
func Float(name string, v float64) Attribute { return Attribute{Name: name, Value: FloatValue(v)} }
func Bool(name string, v bool) Attribute     { return Attribute{Name: name, Value: BoolValue(v)} }

// copyAttributes makes a defensive copy of a snapshot. Values are immutable, so a shallow copy suffices.
func copyAttributes(in []Attribute) []Attribute {
	if in == nil {
		return nil
	}
	out := make([]Attribute, len(in))
	copy(out, in)
	return out
}
