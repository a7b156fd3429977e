package search

import (
	"strings"
	"unicode"
)

// tokenDelimiters defines characters that separate tokens in names and
// type expressions.
const tokenDelimiters = "/._-[]:"

// Tokenize splits a name into searchable tokens: delimiter-separated
// words plus camel-case segments, lowercased, dropping tokens shorter
// than 2 characters.
func Tokenize(s string) []string {
	rough := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(tokenDelimiters, r) || unicode.IsSpace(r)
	})

	var tokens []string
	for _, part := range rough {
		for _, w := range splitCamel(part) {
			w = strings.ToLower(w)
			if len(w) >= 2 {
				tokens = append(tokens, w)
			}
		}
	}
	return tokens
}

// splitCamel breaks "CreatedAt" into ["Created", "At"] and "userID"
// into ["user", "ID"]. Runs of capitals stay together.
func splitCamel(s string) []string {
	var words []string
	runes := []rune(s)
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := unicode.IsUpper(cur) && unicode.IsLower(prev)
		if !boundary && i+1 < len(runes) {
			// End of a capital run: "JSONBody" -> "JSON", "Body".
			boundary = unicode.IsUpper(prev) && unicode.IsUpper(cur) && unicode.IsLower(runes[i+1])
		}
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	words = append(words, string(runes[start:]))
	return words
}
