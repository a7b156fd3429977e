package mcp

import (
	"context"
	"fmt"
	"sort"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/typeforge/typeforge/internal/config"
	"github.com/typeforge/typeforge/internal/gen"
	"github.com/typeforge/typeforge/internal/query"
	"github.com/typeforge/typeforge/internal/schema"
	"github.com/typeforge/typeforge/internal/search"
	"github.com/typeforge/typeforge/pkg/infer"
	"github.com/typeforge/typeforge/pkg/sample"
)

// Deps carries shared dependencies for all tools.
type Deps struct {
	Config *config.Config
	Store  *ResultStore
}

// ErrInvalidInput formats a tool input error.
func ErrInvalidInput(msg string) error {
	return fmt.Errorf("invalid input: %s", msg)
}

// ErrNotFound formats a missing-resource error.
func ErrNotFound(kind, id string) error {
	return fmt.Errorf("%s %q not found; run typeforge_infer_types first", kind, id)
}

// InferTypesInput is the input for typeforge_infer_types.
type InferTypesInput struct {
	Sample     string                       `json:"sample" jsonschema:"Sample document text to infer types from (JSON by default)"`
	Format     string                       `json:"format,omitempty" jsonschema:"Sample format: json (default) or yaml"`
	RootName   string                       `json:"root_name,omitempty" jsonschema:"Name hint for the root type (default: Root)"`
	Select     string                       `json:"select,omitempty" jsonschema:"Optional jq expression applied to the sample before inference; its first result is inferred"`
	References map[string]map[string]string `json:"references,omitempty" jsonschema:"Optional reference schemas pinning well-known shapes to stable names: type name -> field name -> coarse kind (null, string, number, boolean, array, object). Matched in sorted name order."`
}

// InferTypesOutput is the output for typeforge_infer_types.
type InferTypesOutput struct {
	CatalogID string              `json:"catalog_id"`
	RootType  string              `json:"root_type"`
	Types     []*infer.RecordType `json:"types"`
	Hint      string              `json:"hint,omitempty"`
}

// ToolInferTypes runs the inference engine over a sample supplied
// inline and stores the resulting catalog for follow-up tools.
func ToolInferTypes(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input InferTypesInput) (*sdkmcp.CallToolResult, InferTypesOutput, error) {
	engine := infer.NewEngine()
	queries := query.NewEngine()

	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input InferTypesInput) (*sdkmcp.CallToolResult, InferTypesOutput, error) {
		if input.Sample == "" {
			return nil, InferTypesOutput{}, ErrInvalidInput("sample is required")
		}

		var v *sample.Value
		var err error
		switch input.Format {
		case "", "json":
			v, err = sample.DecodeJSON([]byte(input.Sample))
		case "yaml":
			v, err = sample.DecodeYAML([]byte(input.Sample))
		default:
			return nil, InferTypesOutput{}, ErrInvalidInput("format must be json or yaml")
		}
		if err != nil {
			return nil, InferTypesOutput{}, fmt.Errorf("decoding sample: %w", err)
		}

		if input.Select != "" {
			v, err = queries.Select(v, input.Select)
			if err != nil {
				return nil, InferTypesOutput{}, err
			}
		}

		refs, err := referenceSet(input.References)
		if err != nil {
			return nil, InferTypesOutput{}, err
		}

		rootName := input.RootName
		if rootName == "" {
			rootName = d.Config.DefaultRootName
		}

		res := engine.Parse(v, infer.Options{
			RootName:   rootName,
			Source:     "mcp",
			References: refs,
		})
		id := d.Store.Put(res)

		out := InferTypesOutput{
			CatalogID: id,
			RootType:  res.Metadata.RootType,
			Types:     res.Types,
			Hint:      "Pass catalog_id to typeforge_render_types, typeforge_export_schema, or typeforge_search_types.",
		}
		if out.Types == nil {
			out.Types = []*infer.RecordType{}
		}
		return nil, out, nil
	}
}

// referenceSet converts the tool's map form into an ordered reference
// set. JSON object order is not preserved by Go maps, so precedence is
// sorted name order, as documented on the input field.
func referenceSet(refs map[string]map[string]string) (*infer.ReferenceSet, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(refs))
	for name := range refs {
		names = append(names, name)
	}
	sort.Strings(names)

	schemas := make([]infer.ReferenceSchema, 0, len(names))
	for _, name := range names {
		fieldNames := make([]string, 0, len(refs[name]))
		for fn := range refs[name] {
			fieldNames = append(fieldNames, fn)
		}
		sort.Strings(fieldNames)

		rs := infer.ReferenceSchema{Name: name}
		for _, fn := range fieldNames {
			kind := sample.KindFromName(refs[name][fn])
			if kind == sample.KindInvalid {
				return nil, ErrInvalidInput(fmt.Sprintf("reference %q field %q has unknown kind %q", name, fn, refs[name][fn]))
			}
			rs.Fields = append(rs.Fields, infer.ReferenceField{Name: fn, Kind: kind})
		}
		schemas = append(schemas, rs)
	}
	return infer.NewReferenceSet(schemas...), nil
}

// RenderTypesInput is the input for typeforge_render_types.
type RenderTypesInput struct {
	CatalogID string `json:"catalog_id" jsonschema:"Catalog ID from typeforge_infer_types"`
	Format    string `json:"format,omitempty" jsonschema:"Output language: go (default) or ts"`
	Package   string `json:"package,omitempty" jsonschema:"Go package name for go output (default: types)"`
}

// RenderTypesOutput is the output for typeforge_render_types.
type RenderTypesOutput struct {
	Format string `json:"format"`
	Source string `json:"source"`
}

// ToolRenderTypes renders a stored catalog as source declarations.
func ToolRenderTypes(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input RenderTypesInput) (*sdkmcp.CallToolResult, RenderTypesOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input RenderTypesInput) (*sdkmcp.CallToolResult, RenderTypesOutput, error) {
		stored, ok := d.Store.Get(input.CatalogID)
		if !ok {
			return nil, RenderTypesOutput{}, ErrNotFound("catalog", input.CatalogID)
		}

		name := input.Format
		if name == "" {
			name = string(gen.FormatGo)
		}
		format, err := gen.ParseFormat(name)
		if err != nil {
			return nil, RenderTypesOutput{}, ErrInvalidInput(err.Error())
		}

		// One generator per call; its caser is not safe for concurrent use.
		g, err := gen.New()
		if err != nil {
			return nil, RenderTypesOutput{}, err
		}
		src, err := g.Render(stored.Result, format, input.Package)
		if err != nil {
			return nil, RenderTypesOutput{}, err
		}
		return nil, RenderTypesOutput{Format: string(format), Source: src}, nil
	}
}

// ExportSchemaInput is the input for typeforge_export_schema.
type ExportSchemaInput struct {
	CatalogID string `json:"catalog_id" jsonschema:"Catalog ID from typeforge_infer_types"`
}

// ExportSchemaOutput is the output for typeforge_export_schema.
type ExportSchemaOutput struct {
	Schema any `json:"schema"`
}

// ToolExportSchema exports a stored catalog as a JSON Schema document.
func ToolExportSchema(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ExportSchemaInput) (*sdkmcp.CallToolResult, ExportSchemaOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ExportSchemaInput) (*sdkmcp.CallToolResult, ExportSchemaOutput, error) {
		stored, ok := d.Store.Get(input.CatalogID)
		if !ok {
			return nil, ExportSchemaOutput{}, ErrNotFound("catalog", input.CatalogID)
		}
		return nil, ExportSchemaOutput{Schema: schema.Export(stored.Result)}, nil
	}
}

// SearchTypesInput is the input for typeforge_search_types.
type SearchTypesInput struct {
	CatalogID string `json:"catalog_id" jsonschema:"Catalog ID from typeforge_infer_types"`
	Query     string `json:"query" jsonschema:"Free-text query over type names, field names, and type refs (tokens ANDed)"`
}

// SearchTypesOutput is the output for typeforge_search_types.
type SearchTypesOutput struct {
	Hits []search.Hit `json:"hits"`
}

// ToolSearchTypes searches a stored catalog's token index.
func ToolSearchTypes(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchTypesInput) (*sdkmcp.CallToolResult, SearchTypesOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchTypesInput) (*sdkmcp.CallToolResult, SearchTypesOutput, error) {
		if input.Query == "" {
			return nil, SearchTypesOutput{}, ErrInvalidInput("query is required")
		}
		stored, ok := d.Store.Get(input.CatalogID)
		if !ok {
			return nil, SearchTypesOutput{}, ErrNotFound("catalog", input.CatalogID)
		}

		hits := stored.Index.Query(input.Query)
		if hits == nil {
			hits = []search.Hit{}
		}
		return nil, SearchTypesOutput{Hits: hits}, nil
	}
}
