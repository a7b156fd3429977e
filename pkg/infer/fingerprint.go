package infer

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/typeforge/typeforge/pkg/sample"
)

// Fingerprint computes a cheap structural signature of a record-shaped
// value: a hash over the sorted set of (field name, coarse kind) pairs.
// Two values with the same fingerprint are treated as structurally
// identical for cycle containment within one inference pass; final
// deduplication is by name, not by fingerprint. Pure function, never
// fails. Callers only invoke it on object values.
func Fingerprint(v *sample.Value) string {
	pairs := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		pairs = append(pairs, f.Name+"\x00"+f.Value.Kind.String())
	}
	sort.Strings(pairs)

	sum := sha256.Sum256([]byte(strings.Join(pairs, "\x01")))
	return hex.EncodeToString(sum[:16])
}
