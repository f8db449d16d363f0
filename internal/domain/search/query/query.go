package query

import (
	"strings"
	"unicode/utf8"
)

// MinLength is the minimum rune count a query must have after trimming.
// Shorter inputs are rejected before any source is consulted.
const MinLength = 2

// Query is a normalized search needle: trimmed and lowercased. The zero
// value matches nothing; construct one through Normalize.
type Query struct {
	needle string
}

// Normalize trims and lowercases raw input. It reports false when the
// trimmed input is shorter than MinLength runes, counted in runes so that
// two-character Devanagari queries pass.
func Normalize(raw string) (Query, bool) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	if utf8.RuneCountInString(needle) < MinLength {
		return Query{}, false
	}
	return Query{needle: needle}, true
}

// MatchesAny reports whether the needle is a case-insensitive substring of
// any of the given fields. An empty query matches nothing.
func (q Query) MatchesAny(fields ...string) bool {
	if q.needle == "" {
		return false
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q.needle) {
			return true
		}
	}
	return false
}

func (q Query) String() string { return q.needle }
