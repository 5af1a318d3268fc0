// internal/wordfreq/encoding.go
package wordfreq

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// repairMojibake undoes the double encoding found in Instagram exports, where
// each UTF-8 byte was written as the Latin-1 code point of the same value
// ("cafÃ©" for "café"). Text that cannot be mapped back to Latin-1, or whose
// bytes are not valid UTF-8 afterwards, is returned unchanged.
func repairMojibake(s string) string {
	if isASCII(s) {
		return s
	}
	raw, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return s
	}
	if !utf8.ValidString(raw) {
		return s
	}
	return raw
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
