package infer

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Allocator converts field-path hints into canonical type names and
// resolves collisions with a per-base monotonic counter: the first
// occurrence of a base returns the bare name, later occurrences append
// the occurrence count ("Address", "Address1", "Address2"). Naming is
// derived from structural position, not content, so unrelated fields
// with the same name share a base on purpose.
type Allocator struct {
	titler   cases.Caser
	counts   map[string]int
	taken    map[string]bool
	fallback string
}

// NewAllocator creates an allocator. fallback is used for hints that
// canonicalize to the empty string.
func NewAllocator(fallback string) *Allocator {
	if fallback == "" {
		fallback = DefaultRootName
	}
	return &Allocator{
		// NoLower keeps interior capitals, so "userID" becomes
		// "UserID" rather than "Userid".
		titler:   cases.Title(language.English, cases.NoLower),
		counts:   make(map[string]int),
		taken:    make(map[string]bool),
		fallback: fallback,
	}
}

// Allocate returns a name unique among all names this allocator has
// handed out. Counters are monotonic and never reused.
func (a *Allocator) Allocate(hint string) string {
	base := a.Canonical(hint)
	if base == "" {
		base = a.Canonical(a.fallback)
	}
	for {
		n := a.counts[base]
		a.counts[base] = n + 1
		name := base
		if n > 0 {
			name = base + strconv.Itoa(n)
		}
		if !a.taken[name] {
			a.taken[name] = true
			return name
		}
	}
}

// Canonical normalizes a hint to identifier form: non-identifier
// characters become word boundaries and each word is title-cased.
func (a *Allocator) Canonical(hint string) string {
	words := strings.FieldsFunc(hint, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	for _, w := range words {
		if unicode.IsDigit(rune(w[0])) {
			// Digit-led words have no cased leading letter to title.
			b.WriteString(w)
			continue
		}
		b.WriteString(a.titler.String(w))
	}
	name := b.String()
	if unicode.IsDigit(rune(name[0])) {
		name = "T" + name
	}
	return name
}
