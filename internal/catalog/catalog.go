// Package catalog loads and queries the Git command reference data.
//
// The catalog is read once at startup from comandos.csv (or a read-only
// sqlite mirror), sorted ascending by importance rank, and never mutated
// afterwards. Everything else in this package is a pure function over the
// loaded slice.
package catalog

// Entry is one command record from the catalog.
type Entry struct {
	Name        string
	Description string
	Rank        int
	Usage       []string
}

// maxRank returns the highest rank in the catalog, or 0 when empty.
func maxRank(entries []Entry) int {
	max := 0
	for _, e := range entries {
		if e.Rank > max {
			max = e.Rank
		}
	}
	return max
}
