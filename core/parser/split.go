package parser

import "strings"

// Split breaks text into non-empty substrings around any of the delimiter
// characters in delims. Every delimiter character is treated the same and
// runs of delimiters never produce empty tokens, so an input made entirely
// of delimiters (or the empty string) yields nil.
func Split(text, delims string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	})
}
