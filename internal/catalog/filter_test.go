package catalog

import "testing"

func specEntries() []Entry {
	return []Entry{
		{Name: "git init", Description: "Inicializa um repositório Git", Rank: 1},
		{Name: "git commit", Description: "Grava alterações no repositório", Rank: 5},
		{Name: "git rebase", Description: "Reaplica commits sobre outra base", Rank: 50},
	}
}

func filterRanks(entries []Entry) []int {
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Rank)
	}
	return out
}

func TestFilterFullRangeEmptyTermIsIdentity(t *testing.T) {
	in := specEntries()
	got := Filter(in, 1, 157, "")
	if len(got) != len(in) {
		t.Fatalf("len = %d, want %d", len(got), len(in))
	}
	for i := range in {
		if got[i].Name != in[i].Name {
			t.Fatalf("order changed at %d: %q want %q", i, got[i].Name, in[i].Name)
		}
	}
}

func TestFilterRangeOnly(t *testing.T) {
	got := Filter(specEntries(), 1, 10, "")
	ranks := filterRanks(got)
	if len(ranks) != 2 || ranks[0] != 1 || ranks[1] != 5 {
		t.Fatalf("ranks = %v, want [1 5]", ranks)
	}
}

func TestFilterSearchTerm(t *testing.T) {
	got := Filter(specEntries(), 1, 157, "rebase")
	if len(got) != 1 || got[0].Rank != 50 {
		t.Fatalf("got = %v, want only git rebase", filterRanks(got))
	}
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	got := Filter(specEntries(), 1, 157, "COMMIT")
	// matches "git commit" by name and "git rebase" by description
	if len(got) != 2 {
		t.Fatalf("ranks = %v, want [5 50]", filterRanks(got))
	}
	if got[0].Rank != 5 || got[1].Rank != 50 {
		t.Fatalf("ranks = %v, want [5 50]", filterRanks(got))
	}
}

func TestFilterMatchesDescription(t *testing.T) {
	got := Filter(specEntries(), 1, 157, "inicializa")
	if len(got) != 1 || got[0].Name != "git init" {
		t.Fatalf("got = %v, want git init", filterRanks(got))
	}
}

func TestFilterImpossibleRangeIsEmptyNotError(t *testing.T) {
	got := Filter(specEntries(), 200, 300, "")
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestFilterTrimsTerm(t *testing.T) {
	got := Filter(specEntries(), 1, 157, "  rebase  ")
	if len(got) != 1 || got[0].Rank != 50 {
		t.Fatalf("got = %v, want [50]", filterRanks(got))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	in := specEntries()
	Filter(in, 1, 10, "commit")
	if in[0].Rank != 1 || in[2].Rank != 50 {
		t.Fatalf("input mutated: %v", filterRanks(in))
	}
}
