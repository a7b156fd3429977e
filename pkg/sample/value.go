// Package sample models decoded sample data as a closed tagged variant.
// A Value is one of: null, string, number, boolean, array, or object.
// Object fields keep the order they appeared in the source document,
// which the inference engine relies on for deterministic field output.
package sample

// Kind identifies the runtime kind of a Value. It is decided once at
// decode time and matched exhaustively by consumers.
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
)

// String returns the coarse kind name used in fingerprints and
// reference schemas.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// KindFromName parses a coarse kind name as written in reference schema
// files. Returns KindInvalid for unrecognized names.
func KindFromName(name string) Kind {
	switch name {
	case "null":
		return KindNull
	case "string":
		return KindString
	case "number":
		return KindNumber
	case "boolean", "bool":
		return KindBool
	case "array":
		return KindArray
	case "object":
		return KindObject
	default:
		return KindInvalid
	}
}

// Field is one named member of an object value.
type Field struct {
	Name  string
	Value *Value
}

// Value is a single node of a decoded sample tree. Only the slot
// matching Kind is meaningful; the others stay zero.
type Value struct {
	Kind   Kind
	Str    string
	Num    float64
	Bool   bool
	Items  []*Value
	Fields []Field
}

// Null returns a null value.
func Null() *Value { return &Value{Kind: KindNull} }

// String returns a string value.
func String(s string) *Value { return &Value{Kind: KindString, Str: s} }

// Number returns a number value.
func Number(f float64) *Value { return &Value{Kind: KindNumber, Num: f} }

// Bool returns a boolean value.
func Bool(b bool) *Value { return &Value{Kind: KindBool, Bool: b} }

// Array returns an array value with the given elements.
func Array(items ...*Value) *Value { return &Value{Kind: KindArray, Items: items} }

// Object returns an object value with the given fields, in order.
func Object(fields ...Field) *Value { return &Value{Kind: KindObject, Fields: fields} }

// F is a convenience constructor for an object field.
func F(name string, v *Value) Field { return Field{Name: name, Value: v} }

// Field returns the named field of an object value.
func (v *Value) Field(name string) (*Value, bool) {
	if v == nil || v.Kind != KindObject {
		return nil, false
	}
	for _, f := range v.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}
