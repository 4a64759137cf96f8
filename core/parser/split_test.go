package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		delims   string
		expected []string
	}{
		{"simple", "a b c", " ", []string{"a", "b", "c"}},
		{"mixed delimiters", "a b\tc", " \t", []string{"a", "b", "c"}},
		{"delimiter runs collapse", "a   b\t\t c", " \t", []string{"a", "b", "c"}},
		{"leading and trailing", "  a b  ", " ", []string{"a", "b"}},
		{"empty input", "", " ", nil},
		{"only delimiters", " \t \t", " \t", nil},
		{"semicolons", "ls; pwd ;echo hi", ";", []string{"ls", " pwd ", "echo hi"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Split(tc.text, tc.delims))
		})
	}
}
