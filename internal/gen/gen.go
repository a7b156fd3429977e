// Package gen renders a type catalog as source-code declarations. It
// consumes the parser output only; it never participates in inference.
package gen

import (
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/typeforge/typeforge/pkg/infer"
)

// Format selects the output language.
type Format string

const (
	FormatGo         Format = "go"
	FormatTypeScript Format = "ts"
)

// ParseFormat validates a format name from the CLI.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatGo:
		return FormatGo, nil
	case FormatTypeScript, "typescript":
		return FormatTypeScript, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want go or ts)", s)
	}
}

// Generator renders catalogs into declarations for one target language.
type Generator struct {
	goTmpl *template.Template
	tsTmpl *template.Template
	names  *infer.Allocator
	titler cases.Caser
}

// New creates a generator.
func New() (*Generator, error) {
	g := &Generator{
		names:  infer.NewAllocator(infer.DefaultRootName),
		titler: cases.Title(language.English, cases.NoLower),
	}

	funcs := template.FuncMap{
		"goType":    g.goType,
		"goExpr":    g.goExpr,
		"tsType":    tsType,
		"tsField":   tsField,
		"goField":   g.goFieldName,
		"goJSONTag": goJSONTag,
		"kindOf":    func(rt *infer.RecordType) string { return string(rt.Kind) },
	}

	var err error
	g.goTmpl, err = template.New("go").Funcs(funcs).Parse(goTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing Go template: %w", err)
	}
	g.tsTmpl, err = template.New("ts").Funcs(funcs).Parse(tsTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing TypeScript template: %w", err)
	}
	return g, nil
}

// renderData is the template payload for one catalog.
type renderData struct {
	Package   string
	Types     []*infer.RecordType
	RootType  string
	Source    string
	Timestamp string
	NeedsTime bool
}

// Render emits declarations for every type in the result, in the
// result's advisory emission order.
func (g *Generator) Render(res *infer.Result, format Format, goPackage string) (string, error) {
	if goPackage == "" {
		goPackage = "types"
	}
	data := renderData{
		Package:   goPackage,
		Types:     res.Types,
		RootType:  res.Metadata.RootType,
		Source:    res.Metadata.Source,
		Timestamp: res.Metadata.Timestamp,
		NeedsTime: needsTime(res.Types),
	}

	var b strings.Builder
	var err error
	switch format {
	case FormatGo:
		err = g.goTmpl.Execute(&b, data)
	case FormatTypeScript:
		err = g.tsTmpl.Execute(&b, data)
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return "", fmt.Errorf("rendering %s declarations: %w", format, err)
	}
	return b.String(), nil
}

func needsTime(types []*infer.RecordType) bool {
	for _, rt := range types {
		for _, f := range rt.Fields {
			if infer.BaseRef(f.TypeRef) == infer.TypeDateTime {
				return true
			}
		}
		for _, alt := range rt.Alternatives {
			if infer.BaseRef(alt) == infer.TypeDateTime {
				return true
			}
		}
	}
	return false
}

// goType maps a type expression to a Go type. Optional fields become
// pointers unless the mapped type is already a slice or any.
func (g *Generator) goType(f infer.FieldDescriptor) string {
	t := g.goExpr(f.TypeRef)
	if !f.Required && !strings.HasPrefix(t, "[]") && t != "any" {
		return "*" + t
	}
	return t
}

func (g *Generator) goExpr(ref string) string {
	if strings.HasSuffix(ref, "[]") {
		return "[]" + g.goExpr(strings.TrimSuffix(ref, "[]"))
	}
	switch ref {
	case infer.TypeString:
		return "string"
	case infer.TypeNumber:
		return "float64"
	case infer.TypeBoolean:
		return "bool"
	case infer.TypeDateTime:
		return "time.Time"
	case infer.TypeUnknown:
		return "any"
	default:
		return g.names.Canonical(ref)
	}
}

// GoExpr exposes the Go mapping of a bare type expression (used by the
// alias template and by the docs renderer).
func (g *Generator) GoExpr(ref string) string { return g.goExpr(ref) }

// goInitialisms maps lowercase words to their conventional Go spelling.
var goInitialisms = map[string]string{
	"id": "ID", "url": "URL", "uri": "URI", "api": "API",
	"http": "HTTP", "https": "HTTPS", "json": "JSON", "xml": "XML",
	"uuid": "UUID", "ip": "IP", "sql": "SQL", "html": "HTML",
}

func (g *Generator) goFieldName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return "Field"
	}

	var b strings.Builder
	for _, w := range words {
		if up, ok := goInitialisms[strings.ToLower(w)]; ok {
			b.WriteString(up)
			continue
		}
		b.WriteString(g.titler.String(w))
	}
	ident := b.String()
	if unicode.IsDigit(rune(ident[0])) {
		ident = "T" + ident
	}
	return ident
}

func goJSONTag(f infer.FieldDescriptor) string {
	tag := f.Name
	if !f.Required {
		tag += ",omitempty"
	}
	return "`json:\"" + tag + "\"`"
}

// tsField quotes field names that are not valid TypeScript identifiers.
func tsField(name string) string {
	for i, r := range name {
		ident := r == '_' || r == '$' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(i > 0 && r >= '0' && r <= '9')
		if !ident {
			return fmt.Sprintf("%q", name)
		}
	}
	if name == "" {
		return `""`
	}
	return name
}

// tsType maps a type expression to a TypeScript type.
func tsType(ref string) string {
	if strings.HasSuffix(ref, "[]") {
		return tsType(strings.TrimSuffix(ref, "[]")) + "[]"
	}
	switch ref {
	case infer.TypeString:
		return "string"
	case infer.TypeNumber:
		return "number"
	case infer.TypeBoolean:
		return "boolean"
	case infer.TypeDateTime:
		// ISO-8601 strings on the wire.
		return "string"
	case infer.TypeUnknown:
		return "unknown"
	default:
		return ref
	}
}
