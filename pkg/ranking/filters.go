package ranking

import (
	"strings"
	"unicode/utf8"
)

// CommonPrefixes are affixes that make two words look related when they are not
var CommonPrefixes = []string{"re", "bi", "in", "un", "non"}

// sharedPrefixLen is how many leading characters count as an obvious relation
const sharedPrefixLen = 3

// HasCommonPrefix reports whether word starts with one of CommonPrefixes
func HasCommonPrefix(word string) bool {
	for _, prefix := range CommonPrefixes {
		if strings.HasPrefix(word, prefix) {
			return true
		}
	}
	return false
}

// SharesPrefix reports whether both words begin with the same three characters.
// Characters are runes, so "idée" and "idéal" share "idé".
// Shorter words compare as a whole.
func SharesPrefix(a, b string) bool {
	return head(a, sharedPrefixLen) == head(b, sharedPrefixLen)
}

// SharesStart reports whether both words begin with the same character
func SharesStart(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	ra, _ := utf8.DecodeRuneInString(a)
	rb, _ := utf8.DecodeRuneInString(b)
	return ra == rb
}

// SharesSubword reports whether any length-n substring of candidate occurs in word
func SharesSubword(word, candidate string, n int) bool {
	if n <= 0 {
		return false
	}
	runes := []rune(candidate)
	for i := 0; i+n <= len(runes); i++ {
		if strings.Contains(word, string(runes[i:i+n])) {
			return true
		}
	}
	return false
}

// head returns the first n runes of s
func head(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}
