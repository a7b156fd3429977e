package infer

import (
	"fmt"

	"github.com/typeforge/typeforge/pkg/sample"
)

// ReferenceField is one declared field of a reference schema: a field
// name and the coarse kind the sampled value must have.
type ReferenceField struct {
	Name string
	Kind sample.Kind
}

// ReferenceSchema pins a well-known shape (e.g. "Money", "Address") to
// a stable name. Matching is one-directional containment: every
// declared field must be present in the value with the declared kind;
// extra fields on the value are tolerated. Never mutated.
type ReferenceSchema struct {
	Name   string
	Fields []ReferenceField
}

func (s *ReferenceSchema) matches(v *sample.Value) bool {
	for _, f := range s.Fields {
		fv, ok := v.Field(f.Name)
		if !ok || fv.Kind != f.Kind {
			return false
		}
	}
	return true
}

// ReferenceSet is an ordered collection of reference schemas. Match
// order is the order schemas were added, so callers control precedence.
type ReferenceSet struct {
	schemas []ReferenceSchema
}

// NewReferenceSet creates a reference set from the given schemas.
func NewReferenceSet(schemas ...ReferenceSchema) *ReferenceSet {
	return &ReferenceSet{schemas: schemas}
}

// Len returns the number of schemas in the set.
func (s *ReferenceSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.schemas)
}

// Match returns the name of the first schema contained in the value.
// A nil or empty set never matches.
func (s *ReferenceSet) Match(v *sample.Value) (string, bool) {
	if s == nil || v == nil || v.Kind != sample.KindObject {
		return "", false
	}
	for i := range s.schemas {
		if s.schemas[i].matches(v) {
			return s.schemas[i].Name, true
		}
	}
	return "", false
}

// ParseReferenceSet builds a reference set from a decoded definition
// document: an object mapping schema names to shallow objects mapping
// field names to coarse kind names, e.g.
//
//	{"Money": {"amount": "number", "currency": "string"}}
//
// Schema order follows the document's field order, which decides match
// precedence.
func ParseReferenceSet(v *sample.Value) (*ReferenceSet, error) {
	if v == nil || v.Kind != sample.KindObject {
		return nil, fmt.Errorf("reference schema document must be an object")
	}

	set := &ReferenceSet{schemas: make([]ReferenceSchema, 0, len(v.Fields))}
	for _, entry := range v.Fields {
		if entry.Value.Kind != sample.KindObject {
			return nil, fmt.Errorf("reference schema %q: definition must be an object", entry.Name)
		}
		schema := ReferenceSchema{
			Name:   entry.Name,
			Fields: make([]ReferenceField, 0, len(entry.Value.Fields)),
		}
		for _, field := range entry.Value.Fields {
			if field.Value.Kind != sample.KindString {
				return nil, fmt.Errorf("reference schema %q: field %q must declare a kind name", entry.Name, field.Name)
			}
			kind := sample.KindFromName(field.Value.Str)
			if kind == sample.KindInvalid {
				return nil, fmt.Errorf("reference schema %q: field %q has unknown kind %q", entry.Name, field.Name, field.Value.Str)
			}
			schema.Fields = append(schema.Fields, ReferenceField{Name: field.Name, Kind: kind})
		}
		set.schemas = append(set.schemas, schema)
	}
	return set, nil
}
