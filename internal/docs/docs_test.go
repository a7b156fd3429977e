package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typeforge/typeforge/pkg/infer"
	"github.com/typeforge/typeforge/pkg/sample"
)

func result(t *testing.T, src, root string) *infer.Result {
	t.Helper()
	v, err := sample.DecodeJSON([]byte(src))
	require.NoError(t, err)
	return infer.NewEngine().Parse(v, infer.Options{RootName: root, Source: "test.json"})
}

func TestRender_ContainsTypesAndFields(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	res := result(t, `{"id": 1, "nickname": null, "owner": {"name": "Ann"}}`, "User")
	html, err := r.Render(res, "")
	require.NoError(t, err)

	assert.Contains(t, html, "<title>User &mdash; typeforge</title>")
	assert.Contains(t, html, `data-name="User"`)
	assert.Contains(t, html, `data-name="Owner"`)
	assert.Contains(t, html, ">nickname</td>")
	assert.Contains(t, html, `<span class="optional">optional</span>`)
	assert.Contains(t, html, "source: test.json")
}

func TestRender_EmbedsCatalogJSON(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	res := result(t, `{"id": 1}`, "User")
	html, err := r.Render(res, "API Types")
	require.NoError(t, err)

	assert.Contains(t, html, "API Types")
	assert.Contains(t, html, `"root_type":"User"`)
	assert.Contains(t, html, `"type_ref":"number"`)
}

func TestWriteFile(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "docs.html")
	require.NoError(t, r.WriteFile(result(t, `{"id": 1}`, "User"), "", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
}
