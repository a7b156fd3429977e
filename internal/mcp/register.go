package mcp

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	// Tool 1: typeforge_infer_types
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "typeforge_infer_types",
		Description: "Infer a named type catalog from a JSON or YAML sample. Returns {catalog_id, root_type, types}. Each type lists its fields with type refs (string, number, boolean, datetime, unknown, a type name, or []T) and a required flag. Structurally identical records are merged into one type. Pass catalog_id to render_types, export_schema, or search_types.",
	}, ToolInferTypes(d))

	// Tool 2: typeforge_render_types
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "typeforge_render_types",
		Description: "Render a stored catalog as Go struct or TypeScript interface declarations. Requires catalog_id from infer_types.",
	}, ToolRenderTypes(d))

	// Tool 3: typeforge_export_schema
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "typeforge_export_schema",
		Description: "Export a stored catalog as a JSON Schema (draft 2020-12) document with one $defs entry per type. Requires catalog_id from infer_types.",
	}, ToolExportSchema(d))

	// Tool 4: typeforge_search_types
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "typeforge_search_types",
		Description: "Search a stored catalog by free text over type names, field names, and type refs (tokens ANDed, camelCase split). Requires catalog_id from infer_types.",
	}, ToolSearchTypes(d))
}
