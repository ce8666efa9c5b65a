package search

import "strings"

// Matcher does case insensitive substring matching against one query.
// The query is normalized once, candidates on every call.
type Matcher struct {
	normalizer Normalizer
	needle     string
}

func NewMatcher(query string, normalizer Normalizer) *Matcher {
	query = strings.TrimSpace(query)
	needle := ""
	if query != "" {
		needle = normalizer.Normalize(query)
	}
	return &Matcher{
		normalizer: normalizer,
		needle:     needle,
	}
}

// IsEmpty is true for a blank query, which matches everything.
func (m *Matcher) IsEmpty() bool {
	return m.needle == ""
}

func (m *Matcher) Match(text string) bool {
	if m.IsEmpty() {
		return true
	}
	if text == "" {
		return false
	}
	return strings.Contains(m.normalizer.Normalize(text), m.needle)
}

func (m *Matcher) MatchAny(texts ...string) bool {
	if m.IsEmpty() {
		return true
	}
	for _, text := range texts {
		if m.Match(text) {
			return true
		}
	}
	return false
}
