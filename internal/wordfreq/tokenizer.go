// internal/wordfreq/tokenizer.go
package wordfreq

import (
	"iter"
	"strings"
)

// Tokenize returns the lowercased word tokens of text as a lazy sequence.
// A token is a maximal run of word characters (ASCII letters, digits and
// underscore, the \w class); every other character is a separator.
func Tokenize(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if text == "" {
			return
		}
		lower := strings.ToLower(text)
		start := -1
		for i := 0; i < len(lower); i++ {
			if isWordByte(lower[i]) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				if !yield(lower[start:i]) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			yield(lower[start:])
		}
	}
}

// CountTokens returns how many tokens Tokenize would yield for text.
func CountTokens(text string) int {
	n := 0
	for range Tokenize(text) {
		n++
	}
	return n
}

// isWordByte reports whether b belongs to \w. Bytes of multi-byte UTF-8
// sequences are all >= 0x80 and therefore act as separators.
func isWordByte(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z':
		return true
	case 'A' <= b && b <= 'Z':
		return true
	case '0' <= b && b <= '9':
		return true
	}
	return b == '_'
}
