// Package schema exports inferred type catalogs as JSON Schema
// (Draft 2020-12) and checks exported schemas against the samples they
// were inferred from.
package schema

import (
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/typeforge/typeforge/pkg/infer"
)

const draftURL = "https://json-schema.org/draft/2020-12/schema"

// Export converts a parse result into a single JSON Schema document:
// one $defs entry per catalog type, with the root type referenced from
// the document root. All inter-type references become $ref pointers.
func Export(res *infer.Result) *jsonschema.Schema {
	known := make(map[string]bool, len(res.Types))
	for _, rt := range res.Types {
		known[rt.Name] = true
	}

	root := &jsonschema.Schema{
		Version:     draftURL,
		Ref:         defsRef(res.Metadata.RootType),
		Definitions: jsonschema.Definitions{},
	}
	for _, rt := range res.Types {
		root.Definitions[rt.Name] = typeSchema(rt, known)
	}
	return root
}

func typeSchema(rt *infer.RecordType, known map[string]bool) *jsonschema.Schema {
	switch rt.Kind {
	case infer.KindRecord:
		s := &jsonschema.Schema{
			Type:       "object",
			Properties: jsonschema.NewProperties(),
		}
		for _, f := range rt.Fields {
			fs := exprSchema(f.TypeRef, known)
			if f.Description != "" {
				fs.Description = f.Description
			}
			s.Properties.Set(f.Name, fs)
			if f.Required {
				s.Required = append(s.Required, f.Name)
			}
		}
		return s

	case infer.KindAlias:
		if len(rt.Alternatives) == 1 {
			return exprSchema(rt.Alternatives[0], known)
		}
		anyOf := make([]*jsonschema.Schema, 0, len(rt.Alternatives))
		for _, alt := range rt.Alternatives {
			anyOf = append(anyOf, exprSchema(alt, known))
		}
		return &jsonschema.Schema{AnyOf: anyOf}

	case infer.KindEnumeration:
		enum := make([]any, 0, len(rt.Alternatives))
		for _, alt := range rt.Alternatives {
			enum = append(enum, alt)
		}
		return &jsonschema.Schema{Type: "string", Enum: enum}

	default:
		return &jsonschema.Schema{}
	}
}

// exprSchema maps a type expression to a schema fragment. Names pinned
// by reference schemas are not catalog entries and map to the
// accept-anything schema, as do unknown markers.
func exprSchema(expr string, known map[string]bool) *jsonschema.Schema {
	if strings.HasSuffix(expr, "[]") {
		return &jsonschema.Schema{
			Type:  "array",
			Items: exprSchema(strings.TrimSuffix(expr, "[]"), known),
		}
	}
	switch expr {
	case infer.TypeString:
		return &jsonschema.Schema{Type: "string"}
	case infer.TypeNumber:
		return &jsonschema.Schema{Type: "number"}
	case infer.TypeBoolean:
		return &jsonschema.Schema{Type: "boolean"}
	case infer.TypeDateTime:
		return &jsonschema.Schema{Type: "string", Format: "date-time"}
	case infer.TypeUnknown:
		return &jsonschema.Schema{}
	default:
		if known[expr] {
			return &jsonschema.Schema{Ref: defsRef(expr)}
		}
		return &jsonschema.Schema{}
	}
}

func defsRef(name string) string { return "#/$defs/" + name }
