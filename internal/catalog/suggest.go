package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the command name closest to term by edit distance,
// for the "no matches" status line. Names are compared token by token
// so "comit" still reaches "git commit". Ties keep the first (lowest
// rank) candidate; no suggestion is made when even the best match is
// further than half the term length.
func Suggest(entries []Entry, term string) (string, bool) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || len(entries) == 0 {
		return "", false
	}

	best := ""
	bestDist := -1
	for _, e := range entries {
		d := nameDistance(e.Name, term)
		if bestDist == -1 || d < bestDist {
			best = e.Name
			bestDist = d
		}
	}

	if bestDist > len(term)/2 {
		return "", false
	}
	return best, true
}

func nameDistance(name, term string) int {
	name = strings.ToLower(name)
	dist := levenshtein.ComputeDistance(term, name)
	for _, token := range strings.Fields(name) {
		if d := levenshtein.ComputeDistance(term, token); d < dist {
			dist = d
		}
	}
	return dist
}
