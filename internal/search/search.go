// Package search provides token search over a type catalog. Each type
// gets a document ID; tokens from its name, field names, and field type
// refs map to roaring posting bitmaps that are intersected per query
// token.
package search

import (
	"sort"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/typeforge/typeforge/pkg/infer"
)

// Hit is one search result.
type Hit struct {
	Type   *infer.RecordType `json:"-"`
	Name   string            `json:"name"`
	Kind   string            `json:"kind"`
	Fields []string          `json:"fields,omitempty"`
}

// Index is an inverted token index over one catalog. Build once, query
// many times; the index is read-only after Build.
type Index struct {
	types    []*infer.RecordType
	postings map[string]*roaring.Bitmap
}

// Build indexes the given types in order; positions become document IDs.
func Build(types []*infer.RecordType) *Index {
	idx := &Index{
		types:    types,
		postings: make(map[string]*roaring.Bitmap),
	}
	for i, rt := range types {
		doc := uint32(i)
		idx.add(rt.Name, doc)
		for _, f := range rt.Fields {
			idx.add(f.Name, doc)
			idx.add(f.TypeRef, doc)
		}
		for _, alt := range rt.Alternatives {
			idx.add(alt, doc)
		}
	}
	return idx
}

func (idx *Index) add(s string, doc uint32) {
	for _, tok := range Tokenize(s) {
		bm, ok := idx.postings[tok]
		if !ok {
			bm = roaring.New()
			idx.postings[tok] = bm
		}
		bm.Add(doc)
	}
}

// Query intersects the posting bitmaps of every query token (tokens are
// ANDed) and returns matching types in catalog order. An empty query
// matches nothing.
func (idx *Index) Query(q string) []Hit {
	tokens := Tokenize(q)
	if len(tokens) == 0 {
		return nil
	}

	var candidates *roaring.Bitmap
	for _, tok := range tokens {
		bm, ok := idx.postings[tok]
		if !ok {
			return nil
		}
		if candidates == nil {
			candidates = bm.Clone()
		} else {
			candidates.And(bm)
		}
	}
	if candidates == nil || candidates.IsEmpty() {
		return nil
	}

	docs := candidates.ToArray()
	sort.Slice(docs, func(i, j int) bool { return docs[i] < docs[j] })

	hits := make([]Hit, 0, len(docs))
	for _, doc := range docs {
		rt := idx.types[doc]
		hit := Hit{Type: rt, Name: rt.Name, Kind: string(rt.Kind)}
		for _, f := range rt.Fields {
			hit.Fields = append(hit.Fields, f.Name+": "+f.TypeRef)
		}
		hits = append(hits, hit)
	}
	return hits
}

// TokenCount returns the number of distinct tokens in the index.
func (idx *Index) TokenCount() int { return len(idx.postings) }

// Describe formats a hit for terminal output.
func (h Hit) Describe() string {
	var b strings.Builder
	b.WriteString(h.Name)
	b.WriteString(" (")
	b.WriteString(h.Kind)
	b.WriteString(")")
	for _, f := range h.Fields {
		b.WriteString("\n  ")
		b.WriteString(f)
	}
	return b.String()
}
