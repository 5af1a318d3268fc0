// internal/wordfreq/aggregator.go
package wordfreq

// Aggregate counts every token of every record. Records with absent or empty
// content contribute nothing. The same ordered records always give an equal
// table.
func Aggregate(records []MessageRecord) *FrequencyTable {
	table := newFrequencyTable()
	for _, rec := range records {
		text := rec.Text()
		if text == "" {
			continue
		}
		for token := range Tokenize(text) {
			table.add(token, 1)
		}
	}
	return table
}

// Merge sums partial tables into a new one. Words are ordered by the first
// part that holds them, then by that part's own first-seen order, so merging
// per-input tables in input order matches aggregating the inputs in sequence.
// Nil parts are ignored.
func Merge(parts ...*FrequencyTable) *FrequencyTable {
	table := newFrequencyTable()
	for _, part := range parts {
		if part == nil {
			continue
		}
		for _, w := range part.order {
			table.add(w, part.counts[w])
		}
	}
	return table
}
