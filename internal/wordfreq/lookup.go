// internal/wordfreq/lookup.go
package wordfreq

import (
	"fmt"
	"strings"
)

// LookupResult is the answer to a frequency query. Found is false when the
// normalized word is not in the table, which is distinct from a stored count.
type LookupResult struct {
	Query string `json:"query"`
	Word  string `json:"word"`
	Count int    `json:"count"`
	Found bool   `json:"found"`
}

// Message renders the result as a sentence for the user.
func (r LookupResult) Message() string {
	if r.Found {
		return fmt.Sprintf("The word %q appears %d time(s).", r.Query, r.Count)
	}
	return fmt.Sprintf("The word %q does not appear in the analyzed text.", r.Query)
}

// Lookup reports how often word occurs in table. The query is lowercased and
// otherwise used as is, so stop words are found and multi-word queries are
// not. A nil table means no analysis has completed and yields ErrNoAnalysis.
func Lookup(table *FrequencyTable, word string) (LookupResult, error) {
	if table == nil {
		return LookupResult{}, ErrNoAnalysis
	}
	normalized := strings.ToLower(word)
	count, ok := table.Count(normalized)
	return LookupResult{
		Query: word,
		Word:  normalized,
		Count: count,
		Found: ok,
	}, nil
}
