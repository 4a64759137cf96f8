package history

import (
	"fmt"
	"strings"
)

// ExpansionError reports a "!" reference that didn't resolve against the
// store. It aborts processing of the whole input line.
type ExpansionError struct {
	// Ref is the reference as typed, e.g. "!3" or "!ls".
	Ref string
}

func (e *ExpansionError) Error() string {
	return fmt.Sprintf("%s: event not found", e.Ref)
}

// Expand rewrites "!N" and "!prefix" tokens in line using the store.
//
// "!N" resolves against the chronological history, 1-based with 1 the
// oldest retained entry. "!prefix" resolves to the most recently appended
// entry whose text starts with the prefix; the prefix is a maximal run of
// letters, digits, '_' and '-'. A literal '!' followed by anything else is
// copied through. Expansion is a single pass: substituted text is not
// re-scanned for further references.
func Expand(line string, store *Store) (string, error) {
	var out strings.Builder

	for i := 0; i < len(line); i++ {
		c := line[i]
		if c != '!' || i+1 >= len(line) {
			out.WriteByte(c)
			continue
		}

		switch next := line[i+1]; {
		case isDigit(next):
			j := i + 1
			for j < len(line) && isDigit(line[j]) {
				j++
			}
			n := 0
			for _, d := range line[i+1 : j] {
				n = n*10 + int(d-'0')
			}
			entry, ok := store.At(n)
			if !ok {
				return "", &ExpansionError{Ref: line[i:j]}
			}
			out.WriteString(entry.Command)
			i = j - 1

		case isLetter(next):
			j := i + 1
			for j < len(line) && isPrefixChar(line[j]) {
				j++
			}
			entry, ok := store.LastByPrefix(line[i+1 : j])
			if !ok {
				return "", &ExpansionError{Ref: line[i:j]}
			}
			out.WriteString(entry.Command)
			i = j - 1

		default:
			out.WriteByte(c)
		}
	}

	return out.String(), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isPrefixChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_' || c == '-'
}
