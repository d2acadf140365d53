package catalog

// Tier is one importance bucket offered by the tier selector.
type Tier struct {
	Label string
	Min   int
	Max   int
}

// Tier boundary constants from the original reference ranking.
const (
	essentialMax    = 10
	intermediateMax = 30
	advancedMax     = 60
	technicalMax    = 100
)

// Tiers returns the selectable importance buckets for a catalog whose
// highest rank is max. The last two buckets stretch to max so the
// selector always covers the file that was actually loaded.
func Tiers(max int) []Tier {
	if max < technicalMax+1 {
		max = technicalMax + 1
	}
	return []Tier{
		{Label: "Essenciais", Min: 1, Max: essentialMax},
		{Label: "Intermediários", Min: essentialMax + 1, Max: intermediateMax},
		{Label: "Avançados", Min: intermediateMax + 1, Max: advancedMax},
		{Label: "Técnicos", Min: advancedMax + 1, Max: technicalMax},
		{Label: "Específicos", Min: technicalMax + 1, Max: max},
		{Label: "Todos os comandos", Min: 1, Max: max},
	}
}

// TierFor maps a rank to its tier label, mirroring the importance badge
// of the original app.
func TierFor(rank int) string {
	switch {
	case rank <= essentialMax:
		return "Essenciais"
	case rank <= intermediateMax:
		return "Intermediários"
	case rank <= advancedMax:
		return "Avançados"
	case rank <= technicalMax:
		return "Técnicos"
	default:
		return "Específicos"
	}
}

// Distribution holds the coarse importance counts shown in the stats
// line. The three buckets partition the catalog, so the fields always
// sum to the total entry count.
type Distribution struct {
	Essential    int // rank <= 10
	Intermediate int // 10 < rank <= 30
	Advanced     int // rank > 30
}

// Distribute counts the full catalog into the three coarse buckets.
// Recomputed on demand; the dataset is small and static.
func Distribute(entries []Entry) Distribution {
	var d Distribution
	for _, e := range entries {
		switch {
		case e.Rank <= essentialMax:
			d.Essential++
		case e.Rank <= intermediateMax:
			d.Intermediate++
		default:
			d.Advanced++
		}
	}
	return d
}

// Total is the sum of the three buckets.
func (d Distribution) Total() int {
	return d.Essential + d.Intermediate + d.Advanced
}

// MaxRank returns the highest rank in the catalog, or 0 when empty.
func MaxRank(entries []Entry) int {
	return maxRank(entries)
}
