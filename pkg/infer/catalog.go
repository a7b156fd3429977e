package infer

import (
	"fmt"
	"sort"
	"strings"
)

// TypeKind discriminates the three catalog entry shapes.
type TypeKind string

const (
	KindRecord      TypeKind = "record"
	KindAlias       TypeKind = "alias"
	KindEnumeration TypeKind = "enumeration"
)

// FieldDescriptor describes one field of a record type. TypeRef is
// either a primitive/composite type expression (e.g. "string",
// "number[]") or the name of another catalog entry. Immutable after
// creation.
type FieldDescriptor struct {
	Name        string `json:"name"`
	TypeRef     string `json:"type_ref"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

// RecordType is a named type discovered during one inference pass.
// For Kind=record, Fields holds the ordered field list; for
// Kind=alias and Kind=enumeration, Alternatives holds the aliased
// type expressions or the enumerated literals. Parents names
// supertypes. Once registered, a RecordType is never mutated.
type RecordType struct {
	Name         string            `json:"name"`
	Kind         TypeKind          `json:"kind"`
	Fields       []FieldDescriptor `json:"fields,omitempty"`
	Alternatives []string          `json:"alternatives,omitempty"`
	Parents      []string          `json:"parents,omitempty"`
}

// Catalog maps type names to RecordTypes and remembers insertion order
// for stable iteration. A name, once bound, always maps to the same
// RecordType for the lifetime of the catalog.
type Catalog struct {
	byName map[string]*RecordType
	order  []string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byName: make(map[string]*RecordType)}
}

// Register adds a RecordType under its name. Registering a name twice
// is refused so an existing binding is never silently overwritten.
func (c *Catalog) Register(rt *RecordType) error {
	if rt == nil || rt.Name == "" {
		return fmt.Errorf("record type must have a name")
	}
	if _, exists := c.byName[rt.Name]; exists {
		return fmt.Errorf("type %q is already registered", rt.Name)
	}
	c.byName[rt.Name] = rt
	c.order = append(c.order, rt.Name)
	return nil
}

// Get returns the RecordType bound to name.
func (c *Catalog) Get(name string) (*RecordType, bool) {
	rt, ok := c.byName[name]
	return rt, ok
}

// Len returns the number of registered types.
func (c *Catalog) Len() int { return len(c.order) }

// Types returns all registered types in insertion order.
func (c *Catalog) Types() []*RecordType {
	out := make([]*RecordType, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

// Ordered produces the emission order for consumers: the root type
// first, then the remaining types stable-sorted so that types with
// fewer distinct incoming references come earlier (dependents before
// dependencies, approximately). Ties keep insertion order. The order
// is advisory for generator readability; every entry is self-contained
// because fields reference other types by name only.
func (c *Catalog) Ordered(root string) []*RecordType {
	referrers := make(map[string]map[string]bool)
	for _, name := range c.order {
		rt := c.byName[name]
		for _, ref := range c.referencedNames(rt) {
			if ref == name {
				continue
			}
			if referrers[ref] == nil {
				referrers[ref] = make(map[string]bool)
			}
			referrers[ref][name] = true
		}
	}

	rest := make([]string, 0, len(c.order))
	for _, name := range c.order {
		if name != root {
			rest = append(rest, name)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return len(referrers[rest[i]]) < len(referrers[rest[j]])
	})

	out := make([]*RecordType, 0, len(c.order))
	if rt, ok := c.byName[root]; ok {
		out = append(out, rt)
	}
	for _, name := range rest {
		out = append(out, c.byName[name])
	}
	return out
}

// referencedNames lists catalog names a type refers to through its
// field type refs or alternatives.
func (c *Catalog) referencedNames(rt *RecordType) []string {
	var refs []string
	add := func(expr string) {
		base := BaseRef(expr)
		if _, ok := c.byName[base]; ok {
			refs = append(refs, base)
		}
	}
	for _, f := range rt.Fields {
		add(f.TypeRef)
	}
	for _, alt := range rt.Alternatives {
		add(alt)
	}
	return refs
}

// BaseRef strips array suffixes from a type expression, returning the
// element type name ("User[][]" -> "User").
func BaseRef(expr string) string {
	for strings.HasSuffix(expr, "[]") {
		expr = strings.TrimSuffix(expr, "[]")
	}
	return expr
}

// ArrayOf returns the array type expression for an element type.
func ArrayOf(expr string) string { return expr + "[]" }
