package sample

import (
	"bytes"
	"fmt"
	"math/big"
	"sort"

	json "github.com/goccy/go-json"
)

// DecodeJSON decodes a JSON document into a Value tree. Object keys keep
// their document order, which encoding into map[string]any would lose;
// the decoder therefore walks the token stream directly.
func DecodeJSON(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding sample JSON: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decoding sample JSON: trailing data after top-level value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case string:
		return String(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %q: %w", t.String(), err)
		}
		return Number(f), nil
	case float64:
		return Number(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (*Value, error) {
	var fields []Field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		child, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: key, Value: child})
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return Object(fields...), nil
}

func decodeArray(dec *json.Decoder) (*Value, error) {
	var items []*Value
	for dec.More() {
		child, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		items = append(items, child)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return Array(items...), nil
}

// ToAny converts a Value tree to the generic map/slice/primitive form
// used by jq evaluation and schema validation. Object field order is
// lost (Go maps are unordered).
func ToAny(v *Value) any {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case KindNull:
		return nil
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num
	case KindBool:
		return v.Bool
	case KindArray:
		items := make([]any, 0, len(v.Items))
		for _, item := range v.Items {
			items = append(items, ToAny(item))
		}
		return items
	case KindObject:
		obj := make(map[string]any, len(v.Fields))
		for _, f := range v.Fields {
			obj[f.Name] = ToAny(f.Value)
		}
		return obj
	default:
		return nil
	}
}

// FromAny converts an already-decoded generic value (as produced by jq
// evaluation or json.Unmarshal into any) to a Value tree. Map key order
// is not recoverable, so object fields are emitted in sorted-key order
// to keep the result deterministic.
func FromAny(v any) *Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return &Value{Kind: KindInvalid}
		}
		return Number(f)
	case *big.Int:
		f, _ := new(big.Float).SetInt(t).Float64()
		return Number(f)
	case []any:
		items := make([]*Value, 0, len(t))
		for _, item := range t {
			items = append(items, FromAny(item))
		}
		return Array(items...)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]Field, 0, len(keys))
		for _, k := range keys {
			fields = append(fields, Field{Name: k, Value: FromAny(t[k])})
		}
		return Object(fields...)
	default:
		return &Value{Kind: KindInvalid}
	}
}
