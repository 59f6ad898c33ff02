package catalog

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize applies simple canonicalization rules suitable for identity:
// surrounding whitespace is trimmed, inner whitespace runs collapse to a
// single space and the result is uppercased. Every product-name comparison
// between catalog and order data must go through this function.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.ToUpper(s)
}
