package mcp

import (
	"fmt"
	"sync"
	"time"

	"github.com/typeforge/typeforge/internal/search"
	"github.com/typeforge/typeforge/pkg/infer"
)

// StoredResult holds one inference result plus its search index.
type StoredResult struct {
	Result    *infer.Result
	Index     *search.Index
	CreatedAt time.Time
}

// ResultStore keeps inference results by catalog ID so later tool calls
// (render, export, search) can reference a prior inference.
type ResultStore struct {
	mu      sync.RWMutex
	results map[string]*StoredResult
	seq     int
}

// NewResultStore creates an empty store.
func NewResultStore() *ResultStore {
	return &ResultStore{results: make(map[string]*StoredResult)}
}

// Put stores a result and returns its generated catalog ID.
func (s *ResultStore) Put(res *infer.Result) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	id := fmt.Sprintf("cat_%d", s.seq)
	s.results[id] = &StoredResult{
		Result:    res,
		Index:     search.Build(res.Types),
		CreatedAt: time.Now(),
	}
	return id
}

// Get retrieves a stored result by catalog ID.
func (s *ResultStore) Get(id string) (*StoredResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.results[id]
	return res, ok
}
