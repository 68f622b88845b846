package app

import (
	"strings"
	"unicode"
)

// CleanText strips every rune that is not a letter, digit, underscore
// or whitespace. CJK ideographs are letters and survive. The transform
// is deterministic and idempotent; missing content arrives as "" and
// stays "".
func CleanText(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
}
