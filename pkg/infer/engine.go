// Package infer derives named record types from sample data trees and
// collects them into a deduplicated catalog for downstream generators.
//
// Known limitation: arrays are typed from their first element only, so
// heterogeneous arrays do not produce union types. Empty arrays yield
// "unknown[]".
package infer

import (
	"regexp"
	"time"

	"github.com/typeforge/typeforge/pkg/sample"
)

// Primitive and composite type expressions used in field type refs.
const (
	TypeString   = "string"
	TypeNumber   = "number"
	TypeBoolean  = "boolean"
	TypeDateTime = "datetime"
	TypeUnknown  = "unknown"
)

// DefaultRootName is the type name used when the caller supplies none.
const DefaultRootName = "Root"

// temporalPattern matches ISO-8601 date-times: date, "T", time,
// optional fractional seconds, then "Z" or a numeric offset.
var temporalPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})$`)

// Options configures one inference call.
type Options struct {
	// RootName is the name hint for the root type. Defaults to
	// DefaultRootName.
	RootName string
	// Source labels the sample's origin in the result metadata.
	Source string
	// References optionally pins well-known shapes to stable names,
	// short-circuiting inference for values they match.
	References *ReferenceSet
}

// Metadata describes one inference run.
type Metadata struct {
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
	RootType  string `json:"root_type"`
}

// Result is the parser output handed to generators and renderers. All
// inter-type references are by name, never by embedding, so the result
// serializes to plain JSON with no cycles.
type Result struct {
	Types    []*RecordType `json:"types"`
	Metadata Metadata      `json:"metadata"`
}

// Engine infers type catalogs from sample values. The engine itself is
// stateless; every Parse call owns a fresh catalog, name allocator, and
// fingerprint cache, so concurrent calls are safe.
type Engine struct{}

// NewEngine creates an inference engine.
func NewEngine() *Engine { return &Engine{} }

// pass carries the state of one top-level Parse call. None of it is
// shared across calls.
type pass struct {
	catalog *Catalog
	names   *Allocator
	prints  map[string]string // fingerprint -> allocated name
	refs    *ReferenceSet
}

// Parse walks the sampled value, registers every discovered record
// shape into a fresh catalog, and returns the catalog in emission
// order together with run metadata. It never fails for a well-formed
// tree: unrecognized kinds classify as "unknown".
func (e *Engine) Parse(v *sample.Value, opts Options) *Result {
	rootName := opts.RootName
	if rootName == "" {
		rootName = DefaultRootName
	}
	source := opts.Source
	if source == "" {
		source = "sample"
	}

	p := &pass{
		catalog: NewCatalog(),
		names:   NewAllocator(rootName),
		prints:  make(map[string]string),
		refs:    opts.References,
	}

	ref := p.infer(v, rootName)

	rootType := ref
	if v == nil || v.Kind != sample.KindObject {
		// Non-record roots get an alias entry so the root type always
		// names a catalog entry.
		rootType = p.names.Allocate(rootName)
		// The allocator guarantees a fresh name, so registration
		// cannot collide.
		_ = p.catalog.Register(&RecordType{
			Name:         rootType,
			Kind:         KindAlias,
			Alternatives: []string{ref},
		})
	}

	return &Result{
		Types: p.catalog.Ordered(rootType),
		Metadata: Metadata{
			Source:    source,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			RootType:  rootType,
		},
	}
}

// infer classifies a value and returns its type expression, registering
// record types into the pass catalog as a side effect.
func (p *pass) infer(v *sample.Value, hint string) string {
	if v == nil {
		return TypeUnknown
	}

	switch v.Kind {
	case sample.KindNull:
		return TypeUnknown

	case sample.KindString:
		if temporalPattern.MatchString(v.Str) {
			return TypeDateTime
		}
		return TypeString

	case sample.KindNumber:
		// Integer vs. float is deliberately not preserved.
		return TypeNumber

	case sample.KindBool:
		return TypeBoolean

	case sample.KindArray:
		if len(v.Items) == 0 {
			return ArrayOf(TypeUnknown)
		}
		// First element only; heterogeneous arrays are not detected.
		return ArrayOf(p.infer(v.Items[0], hint))

	case sample.KindObject:
		return p.inferRecord(v, hint)

	default:
		return TypeUnknown
	}
}

func (p *pass) inferRecord(v *sample.Value, hint string) string {
	// Caller-pinned shapes win over engine-generated names.
	if name, ok := p.refs.Match(v); ok {
		return name
	}

	// Reuse the name of a structurally identical shape already seen in
	// this pass. Binding the fingerprint before descending bounds
	// recursion on self-similar structures and prevents duplicate
	// registration.
	fp := Fingerprint(v)
	if name, ok := p.prints[fp]; ok {
		return name
	}

	name := p.names.Allocate(hint)
	p.prints[fp] = name

	fields := make([]FieldDescriptor, 0, len(v.Fields))
	for _, f := range v.Fields {
		fields = append(fields, FieldDescriptor{
			Name:     f.Name,
			TypeRef:  p.infer(f.Value, f.Name),
			Required: f.Value.Kind != sample.KindNull,
		})
	}

	_ = p.catalog.Register(&RecordType{
		Name:   name,
		Kind:   KindRecord,
		Fields: fields,
	})
	return name
}
