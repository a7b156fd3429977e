// Package loader reads and decodes sample files for inference. Decoded
// values are memoized in an LRU cache so repeated runs over the same
// inputs (multiple output formats, docs plus codegen) decode once.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/typeforge/typeforge/internal/config"
	"github.com/typeforge/typeforge/internal/query"
	"github.com/typeforge/typeforge/pkg/sample"
)

// Loader reads sample files, applies optional select expressions, and
// returns decoded value trees.
type Loader struct {
	cache   *lru.Cache[string, *sample.Value]
	queries *query.Engine
	maxSize int
}

// New creates a loader with the configured cache size and sample size cap.
func New(cfg *config.Config) (*Loader, error) {
	cache, err := lru.New[string, *sample.Value](cfg.SampleCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating sample cache: %w", err)
	}
	return &Loader{
		cache:   cache,
		queries: query.NewEngine(),
		maxSize: cfg.MaxSampleBytes,
	}, nil
}

// Load reads and decodes one sample file. selectExpr, when non-empty,
// is a jq expression applied to the decoded document; its first result
// becomes the returned value. YAML is detected by extension, everything
// else decodes as JSON.
func (l *Loader) Load(path, selectExpr string) (*sample.Value, error) {
	key := path + "\x00" + selectExpr
	if v, ok := l.cache.Get(key); ok {
		return v, nil
	}

	data, err := l.read(path)
	if err != nil {
		return nil, err
	}

	v, err := Decode(path, data)
	if err != nil {
		return nil, err
	}

	if selectExpr != "" {
		v, err = l.queries.Select(v, selectExpr)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	l.cache.Add(key, v)
	return v, nil
}

func (l *Loader) read(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading sample %s: %w", path, err)
	}
	if l.maxSize > 0 && info.Size() > int64(l.maxSize) {
		return nil, fmt.Errorf("sample %s is %d bytes, exceeding the %d byte cap", path, info.Size(), l.maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sample %s: %w", path, err)
	}
	return data, nil
}

// Decode decodes raw sample bytes, choosing the format by file extension.
func Decode(path string, data []byte) (*sample.Value, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		v, err := sample.DecodeYAML(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return v, nil
	default:
		v, err := sample.DecodeJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return v, nil
	}
}

// RootNameFor derives a root type name hint from a sample path:
// "testdata/user-profile.json" -> "user-profile" (canonicalized later
// by the engine's allocator).
func RootNameFor(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
