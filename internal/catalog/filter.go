package catalog

import "strings"

// Filter returns the entries whose rank falls in [min, max] and, when
// term is non-empty, whose name or description contains term
// case-insensitively. Input order is preserved and the input slice is
// never mutated. An empty result is a valid value, not an error.
func Filter(entries []Entry, min, max int, term string) []Entry {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Rank < min || e.Rank > max {
			continue
		}
		if term != "" && !matchesTerm(e, term) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesTerm(e Entry, term string) bool {
	return strings.Contains(strings.ToLower(e.Name), term) ||
		strings.Contains(strings.ToLower(e.Description), term)
}
