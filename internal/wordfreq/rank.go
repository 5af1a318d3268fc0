// internal/wordfreq/rank.go
package wordfreq

import "slices"

// DefaultLimit is the number of entries kept in a ranked view.
const DefaultLimit = 50

// weightedRanks is how many leading entries get a non-zero weight.
const weightedRanks = 10

// RankedEntry is one row of the ranked view. Rank is 1-based. Weight is a
// display hint in [0,1] derived from the row position only.
type RankedEntry struct {
	Word   string  `json:"word"`
	Count  int     `json:"count"`
	Rank   int     `json:"rank"`
	Weight float64 `json:"weight"`
}

// Rank returns the most frequent words of table that are not in stop, by
// count descending. Equal counts keep first-seen order. At most limit entries
// are returned; limit <= 0 means DefaultLimit. table is not modified.
func Rank(table *FrequencyTable, stop StopWordSet, limit int) []RankedEntry {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if table.Len() == 0 {
		return []RankedEntry{}
	}

	candidates := make([]Entry, 0, table.Len())
	for _, e := range table.Entries() {
		if stop.Contains(e.Word) {
			continue
		}
		candidates = append(candidates, e)
	}
	slices.SortStableFunc(candidates, func(a, b Entry) int {
		return b.Count - a.Count
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	ranked := make([]RankedEntry, len(candidates))
	for i, e := range candidates {
		ranked[i] = RankedEntry{
			Word:   e.Word,
			Count:  e.Count,
			Rank:   i + 1,
			Weight: WeightForIndex(i),
		}
	}
	return ranked
}

// WeightForIndex returns the display weight of the row at 0-based index i:
// 1.0 for the first row, falling by 0.1 per row, and 0 from the eleventh row.
func WeightForIndex(i int) float64 {
	if i < 0 || i >= weightedRanks {
		return 0
	}
	return float64(weightedRanks-i) / weightedRanks
}
