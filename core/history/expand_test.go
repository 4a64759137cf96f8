package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populated(commands ...string) *Store {
	store := NewStore(DefaultCapacity)
	for _, c := range commands {
		store.Append(entry(c))
	}
	return store
}

func TestExpand(t *testing.T) {
	store := populated("ls -la", "pwd", "ls /tmp")

	cases := []struct {
		name     string
		line     string
		expected string
	}{
		{"no references", "echo hello", "echo hello"},
		{"numeric", "!1", "ls -la"},
		{"numeric mid line", "echo !2 done", "echo pwd done"},
		{"prefix most recent wins", "!ls", "ls /tmp"},
		{"prefix with args after", "!pw ; echo ok", "pwd ; echo ok"},
		{"bare bang", "echo hi!", "echo hi!"},
		{"bang before symbol", "echo a!=b", "echo a!=b"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Expand(tc.line, store)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestExpandFailures(t *testing.T) {
	store := populated("ls -la", "pwd")

	for _, line := range []string{"!3", "!0", "!99 && ls", "!git"} {
		t.Run(line, func(t *testing.T) {
			_, err := Expand(line, store)
			require.Error(t, err)

			var expErr *ExpansionError
			assert.ErrorAs(t, err, &expErr)
		})
	}
}

// Expansion is single-pass: substituted text containing further "!" tokens
// is not re-scanned.
func TestExpandNotRecursive(t *testing.T) {
	store := populated("echo !2", "pwd")

	got, err := Expand("!1", store)
	require.NoError(t, err)
	assert.Equal(t, "echo !2", got)
}

func TestExpansionErrorMessage(t *testing.T) {
	err := &ExpansionError{Ref: "!42"}
	assert.Equal(t, "!42: event not found", err.Error())
}
