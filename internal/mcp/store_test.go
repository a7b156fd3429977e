package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typeforge/typeforge/pkg/infer"
	"github.com/typeforge/typeforge/pkg/sample"
)

func inferResult(t *testing.T, src, root string) *infer.Result {
	t.Helper()
	v, err := sample.DecodeJSON([]byte(src))
	require.NoError(t, err)
	return infer.NewEngine().Parse(v, infer.Options{RootName: root, Source: "test"})
}

func TestResultStore_PutGet(t *testing.T) {
	store := NewResultStore()

	id1 := store.Put(inferResult(t, `{"id": 1}`, "User"))
	id2 := store.Put(inferResult(t, `{"name": "x"}`, "Tag"))

	assert.Equal(t, "cat_1", id1)
	assert.Equal(t, "cat_2", id2)

	stored, ok := store.Get(id1)
	require.True(t, ok)
	assert.Equal(t, "User", stored.Result.Metadata.RootType)
	assert.NotNil(t, stored.Index)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestResultStore_GetMissing(t *testing.T) {
	store := NewResultStore()

	_, ok := store.Get("cat_99")
	assert.False(t, ok)
}

func TestResultStore_IndexCoversTypes(t *testing.T) {
	store := NewResultStore()

	id := store.Put(inferResult(t, `{"owner": {"name": "Ann"}}`, "Repo"))
	stored, ok := store.Get(id)
	require.True(t, ok)

	hits := stored.Index.Query("owner")
	require.NotEmpty(t, hits)
}
