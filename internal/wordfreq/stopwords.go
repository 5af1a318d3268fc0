// internal/wordfreq/stopwords.go
package wordfreq

import (
	_ "embed"
	"slices"
	"strings"
)

//go:embed stopwords.txt
var stopWordsData string

// defaultStopWords is built once at startup and never mutated.
var defaultStopWords = parseStopWords(stopWordsData)

// StopWordSet is an immutable set of tokens excluded from the ranked view.
// The zero value is an empty set.
type StopWordSet struct {
	words map[string]struct{}
}

// DefaultStopWords returns the built-in stop words: common English words plus
// chat-export noise such as "attachment" and "reacted".
func DefaultStopWords() StopWordSet {
	return defaultStopWords
}

// NewStopWordSet builds a set from words. Entries are lowercased and trimmed;
// blanks are ignored.
func NewStopWordSet(words ...string) StopWordSet {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return StopWordSet{words: set}
}

// With returns a new set holding s plus extra. s is left unchanged.
func (s StopWordSet) With(extra ...string) StopWordSet {
	if len(extra) == 0 {
		return s
	}
	merged := make([]string, 0, len(s.words)+len(extra))
	for w := range s.words {
		merged = append(merged, w)
	}
	merged = append(merged, extra...)
	return NewStopWordSet(merged...)
}

// Contains reports whether token is a stop word. token must already be normalized.
func (s StopWordSet) Contains(token string) bool {
	_, ok := s.words[token]
	return ok
}

// Len returns the number of words in the set.
func (s StopWordSet) Len() int {
	return len(s.words)
}

// Words returns the set's words in sorted order.
func (s StopWordSet) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	slices.Sort(out)
	return out
}

func parseStopWords(data string) StopWordSet {
	var words []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return NewStopWordSet(words...)
}
