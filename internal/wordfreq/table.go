// internal/wordfreq/table.go
package wordfreq

// Entry is a word and its occurrence count.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// FrequencyTable maps each token of a batch to its occurrence count and keeps
// the order in which distinct tokens were first seen. A table is built by
// Aggregate or Merge and is read-only afterwards.
type FrequencyTable struct {
	counts map[string]int
	order  []string
	total  int
}

func newFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

func (t *FrequencyTable) add(word string, n int) {
	if n <= 0 {
		return
	}
	if _, ok := t.counts[word]; !ok {
		t.order = append(t.order, word)
	}
	t.counts[word] += n
	t.total += n
}

// Count returns the stored count for word and whether word is present.
// word is matched exactly; callers normalize first.
func (t *FrequencyTable) Count(word string) (int, bool) {
	if t == nil {
		return 0, false
	}
	n, ok := t.counts[word]
	return n, ok
}

// Len returns the number of distinct words.
func (t *FrequencyTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Total returns the sum of all counts.
func (t *FrequencyTable) Total() int {
	if t == nil {
		return 0
	}
	return t.total
}

// Words returns the distinct words in first-seen order.
func (t *FrequencyTable) Words() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.order...)
}

// Entries returns every word with its count, in first-seen order.
func (t *FrequencyTable) Entries() []Entry {
	if t == nil {
		return nil
	}
	entries := make([]Entry, len(t.order))
	for i, w := range t.order {
		entries[i] = Entry{Word: w, Count: t.counts[w]}
	}
	return entries
}

// Equal reports whether t and other hold the same words, counts and
// first-seen order.
func (t *FrequencyTable) Equal(other *FrequencyTable) bool {
	if t.Len() != other.Len() || t.Total() != other.Total() {
		return false
	}
	for i, w := range t.Words() {
		if other.order[i] != w || other.counts[w] != t.counts[w] {
			return false
		}
	}
	return true
}
