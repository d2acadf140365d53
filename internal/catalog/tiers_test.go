package catalog

import "testing"

func TestTierForBoundaries(t *testing.T) {
	cases := []struct {
		rank int
		want string
	}{
		{1, "Essenciais"},
		{10, "Essenciais"},
		{11, "Intermediários"},
		{30, "Intermediários"},
		{31, "Avançados"},
		{60, "Avançados"},
		{61, "Técnicos"},
		{100, "Técnicos"},
		{101, "Específicos"},
		{157, "Específicos"},
	}
	for _, tc := range cases {
		if got := TierFor(tc.rank); got != tc.want {
			t.Fatalf("TierFor(%d) = %q, want %q", tc.rank, got, tc.want)
		}
	}
}

func TestTiersCoverCatalog(t *testing.T) {
	tiers := Tiers(157)
	if len(tiers) != 6 {
		t.Fatalf("len = %d, want 6", len(tiers))
	}
	// buckets are contiguous from 1 to max
	for i := 1; i < 5; i++ {
		if tiers[i].Min != tiers[i-1].Max+1 {
			t.Fatalf("gap between %q and %q", tiers[i-1].Label, tiers[i].Label)
		}
	}
	if tiers[4].Max != 157 {
		t.Fatalf("Específicos.Max = %d, want 157", tiers[4].Max)
	}
	all := tiers[5]
	if all.Label != "Todos os comandos" || all.Min != 1 || all.Max != 157 {
		t.Fatalf("all bucket = %+v", all)
	}
}

func TestTiersSmallCatalogStillValid(t *testing.T) {
	tiers := Tiers(50)
	if tiers[4].Min > tiers[4].Max {
		t.Fatalf("Específicos inverted: %+v", tiers[4])
	}
}

func TestDistributeSumsToTotal(t *testing.T) {
	var entries []Entry
	for rank := 1; rank <= 157; rank++ {
		entries = append(entries, Entry{Rank: rank})
	}
	d := Distribute(entries)
	if d.Total() != len(entries) {
		t.Fatalf("total = %d, want %d", d.Total(), len(entries))
	}
	if d.Essential != 10 || d.Intermediate != 20 || d.Advanced != 127 {
		t.Fatalf("distribution = %+v, want 10/20/127", d)
	}
}

func TestDistributeEmptyCatalog(t *testing.T) {
	d := Distribute(nil)
	if d.Total() != 0 {
		t.Fatalf("total = %d, want 0", d.Total())
	}
}

func TestMaxRank(t *testing.T) {
	entries := []Entry{{Rank: 3}, {Rank: 42}, {Rank: 7}}
	if got := MaxRank(entries); got != 42 {
		t.Fatalf("MaxRank = %d, want 42", got)
	}
	if got := MaxRank(nil); got != 0 {
		t.Fatalf("MaxRank(nil) = %d, want 0", got)
	}
}
