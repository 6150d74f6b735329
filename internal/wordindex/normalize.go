package wordindex

import (
	"strings"
	"unicode"
)

// NormalizeToken strips all non-alphabetic characters from a token and
// lowercases the rest. Returns an empty string when nothing survives.
// Normalization is idempotent: normalizing an already-normalized token
// yields the same token.
func NormalizeToken(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	for _, r := range token {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Tokenize splits a subject string on whitespace and normalizes each piece,
// dropping pieces that normalize to nothing.
func Tokenize(subject string) []string {
	fields := strings.Fields(subject)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if w := NormalizeToken(f); w != "" {
			words = append(words, w)
		}
	}
	return words
}
