package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typeforge/typeforge/internal/config"
	"github.com/typeforge/typeforge/pkg/infer"
)

func testDeps() *Deps {
	return &Deps{
		Config: config.Load(),
		Store:  NewResultStore(),
	}
}

func findType(types []*infer.RecordType, name string) *infer.RecordType {
	for _, rt := range types {
		if rt.Name == name {
			return rt
		}
	}
	return nil
}

func TestToolInferTypes_JSON(t *testing.T) {
	d := testDeps()
	handler := ToolInferTypes(d)

	_, out, err := handler(context.Background(), nil, InferTypesInput{
		Sample:   `{"id": 1, "owner": {"name": "Ann"}}`,
		RootName: "Repo",
	})
	require.NoError(t, err)

	assert.Equal(t, "cat_1", out.CatalogID)
	assert.Equal(t, "Repo", out.RootType)
	require.NotNil(t, findType(out.Types, "Repo"))
	require.NotNil(t, findType(out.Types, "Owner"))

	_, ok := d.Store.Get(out.CatalogID)
	assert.True(t, ok)
}

func TestToolInferTypes_YAML(t *testing.T) {
	handler := ToolInferTypes(testDeps())

	_, out, err := handler(context.Background(), nil, InferTypesInput{
		Sample: "id: 1\nname: box\n",
		Format: "yaml",
	})
	require.NoError(t, err)
	assert.Equal(t, "Root", out.RootType)
}

func TestToolInferTypes_Select(t *testing.T) {
	handler := ToolInferTypes(testDeps())

	_, out, err := handler(context.Background(), nil, InferTypesInput{
		Sample:   `{"data": {"user": {"id": 1}}}`,
		RootName: "User",
		Select:   ".data.user",
	})
	require.NoError(t, err)

	root := findType(out.Types, "User")
	require.NotNil(t, root)
	require.Len(t, root.Fields, 1)
	assert.Equal(t, "id", root.Fields[0].Name)
}

func TestToolInferTypes_References(t *testing.T) {
	handler := ToolInferTypes(testDeps())

	_, out, err := handler(context.Background(), nil, InferTypesInput{
		Sample:   `{"total": {"amount": 9.5, "currency": "EUR"}}`,
		RootName: "Invoice",
		References: map[string]map[string]string{
			"Money": {"amount": "number", "currency": "string"},
		},
	})
	require.NoError(t, err)

	root := findType(out.Types, "Invoice")
	require.NotNil(t, root)
	assert.Equal(t, "Money", root.Fields[0].TypeRef)
	assert.Nil(t, findType(out.Types, "Money"))
}

func TestToolInferTypes_Errors(t *testing.T) {
	handler := ToolInferTypes(testDeps())

	_, _, err := handler(context.Background(), nil, InferTypesInput{})
	assert.ErrorContains(t, err, "sample is required")

	_, _, err = handler(context.Background(), nil, InferTypesInput{Sample: "{", Format: "json"})
	assert.Error(t, err)

	_, _, err = handler(context.Background(), nil, InferTypesInput{Sample: "{}", Format: "toml"})
	assert.ErrorContains(t, err, "format must be json or yaml")

	_, _, err = handler(context.Background(), nil, InferTypesInput{
		Sample:     `{}`,
		References: map[string]map[string]string{"Money": {"amount": "decimal"}},
	})
	assert.ErrorContains(t, err, `unknown kind "decimal"`)
}

func TestToolRenderTypes(t *testing.T) {
	d := testDeps()
	inferTool := ToolInferTypes(d)
	render := ToolRenderTypes(d)

	_, inferred, err := inferTool(context.Background(), nil, InferTypesInput{
		Sample:   `{"id": 1, "name": "Ann"}`,
		RootName: "User",
	})
	require.NoError(t, err)

	_, out, err := render(context.Background(), nil, RenderTypesInput{CatalogID: inferred.CatalogID})
	require.NoError(t, err)
	assert.Equal(t, "go", out.Format)
	assert.Contains(t, out.Source, "type User struct {")

	_, out, err = render(context.Background(), nil, RenderTypesInput{
		CatalogID: inferred.CatalogID,
		Format:    "ts",
	})
	require.NoError(t, err)
	assert.Equal(t, "ts", out.Format)
	assert.Contains(t, out.Source, "export interface User {")
}

func TestToolRenderTypes_Errors(t *testing.T) {
	render := ToolRenderTypes(testDeps())

	_, _, err := render(context.Background(), nil, RenderTypesInput{CatalogID: "cat_9"})
	assert.ErrorContains(t, err, "not found")
}

func TestToolExportSchema(t *testing.T) {
	d := testDeps()
	inferTool := ToolInferTypes(d)
	export := ToolExportSchema(d)

	_, inferred, err := inferTool(context.Background(), nil, InferTypesInput{
		Sample:   `{"id": 1}`,
		RootName: "User",
	})
	require.NoError(t, err)

	_, out, err := export(context.Background(), nil, ExportSchemaInput{CatalogID: inferred.CatalogID})
	require.NoError(t, err)
	require.NotNil(t, out.Schema)

	_, _, err = export(context.Background(), nil, ExportSchemaInput{CatalogID: "cat_9"})
	assert.ErrorContains(t, err, "not found")
}

func TestToolSearchTypes(t *testing.T) {
	d := testDeps()
	inferTool := ToolInferTypes(d)
	search := ToolSearchTypes(d)

	_, inferred, err := inferTool(context.Background(), nil, InferTypesInput{
		Sample:   `{"owner": {"fullName": "Ann"}}`,
		RootName: "Repo",
	})
	require.NoError(t, err)

	_, out, err := search(context.Background(), nil, SearchTypesInput{
		CatalogID: inferred.CatalogID,
		Query:     "full name",
	})
	require.NoError(t, err)
	require.Len(t, out.Hits, 1)
	assert.Equal(t, "Owner", out.Hits[0].Name)

	_, out, err = search(context.Background(), nil, SearchTypesInput{
		CatalogID: inferred.CatalogID,
		Query:     "no such token",
	})
	require.NoError(t, err)
	assert.NotNil(t, out.Hits)
	assert.Empty(t, out.Hits)
}

func TestToolSearchTypes_Errors(t *testing.T) {
	search := ToolSearchTypes(testDeps())

	_, _, err := search(context.Background(), nil, SearchTypesInput{CatalogID: "cat_1"})
	assert.ErrorContains(t, err, "query is required")

	_, _, err = search(context.Background(), nil, SearchTypesInput{CatalogID: "cat_9", Query: "x"})
	assert.ErrorContains(t, err, "not found")
}

func TestNewServer(t *testing.T) {
	srv, err := NewServer(&Deps{Config: config.Load()})
	require.NoError(t, err)
	assert.NotNil(t, srv.MCPServer())

	_, err = NewServer(nil)
	assert.Error(t, err)
}
