package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typeforge/typeforge/internal/config"
	"github.com/typeforge/typeforge/pkg/sample"
)

func newLoader(t *testing.T) *Loader {
	t.Helper()
	l, err := New(&config.Config{SampleCacheSize: 8, MaxSampleBytes: 1 << 20})
	require.NoError(t, err)
	return l
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_JSON(t *testing.T) {
	l := newLoader(t)
	path := writeFile(t, "user.json", `{"id": 1}`)

	v, err := l.Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, sample.KindObject, v.Kind)
}

func TestLoad_YAMLByExtension(t *testing.T) {
	l := newLoader(t)
	path := writeFile(t, "user.yaml", "id: 1\nname: Ann\n")

	v, err := l.Load(path, "")
	require.NoError(t, err)
	require.Equal(t, sample.KindObject, v.Kind)
	assert.Equal(t, "id", v.Fields[0].Name)
}

func TestLoad_SelectExpression(t *testing.T) {
	l := newLoader(t)
	path := writeFile(t, "wrapped.json", `{"data": {"id": 1}}`)

	v, err := l.Load(path, ".data")
	require.NoError(t, err)
	_, ok := v.Field("id")
	assert.True(t, ok)
}

func TestLoad_CacheHitReturnsSameValue(t *testing.T) {
	l := newLoader(t)
	path := writeFile(t, "user.json", `{"id": 1}`)

	first, err := l.Load(path, "")
	require.NoError(t, err)
	second, err := l.Load(path, "")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLoad_Failures(t *testing.T) {
	l := newLoader(t)

	t.Run("missing file", func(t *testing.T) {
		_, err := l.Load(filepath.Join(t.TempDir(), "nope.json"), "")
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeFile(t, "bad.json", `{"a":`)
		_, err := l.Load(path, "")
		assert.Error(t, err)
	})

	t.Run("size cap", func(t *testing.T) {
		capped, err := New(&config.Config{SampleCacheSize: 8, MaxSampleBytes: 4})
		require.NoError(t, err)
		path := writeFile(t, "big.json", `{"a": 1}`)
		_, err = capped.Load(path, "")
		assert.Error(t, err)
	})
}

func TestRootNameFor(t *testing.T) {
	assert.Equal(t, "user-profile", RootNameFor("testdata/user-profile.json"))
	assert.Equal(t, "orders", RootNameFor("/tmp/orders.yaml"))
}
