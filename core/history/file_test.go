package history

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPath = "/home/user/.gosh_history"

func TestSaveLoadRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()

	store := NewStore(10)
	store.Append(Entry{Timestamp: time.Unix(1600000000, 0), ExitCode: 0, Command: "ls -la"})
	store.Append(Entry{Timestamp: time.Unix(1600000060, 0), ExitCode: 1, Command: "cat missing.txt"})
	store.Append(Entry{Timestamp: time.Unix(1600000120, 0), ExitCode: -1, Command: "sleep 100"})

	require.NoError(t, Save(fs, testPath, store))

	loaded, err := Load(fs, testPath, 10)
	require.NoError(t, err)
	assert.Equal(t, store.Entries(), loaded.Entries())
}

func TestLoadRecordFormat(t *testing.T) {
	fs := afero.NewMemMapFs()
	contents := strings.Join([]string{
		"1600000000|0|ls -la",
		"1600000060|2|grep a|b file.txt", // embedded separator stays in the text
		"garbage line",
		"notanumber|0|ls",
		"1600000120|-1|kill -9 self",
		"",
	}, "\n")
	require.NoError(t, afero.WriteFile(fs, testPath, []byte(contents), 0600))

	store, err := Load(fs, testPath, 10)
	require.NoError(t, err)
	require.Equal(t, 3, store.Len())

	second, ok := store.At(2)
	require.True(t, ok)
	assert.Equal(t, "grep a|b file.txt", second.Command)
	assert.Equal(t, 2, second.ExitCode)

	third, ok := store.At(3)
	require.True(t, ok)
	assert.Equal(t, -1, third.ExitCode)
}

func TestLoadMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	store, err := Load(fs, testPath, 10)
	assert.Error(t, err)
	// Caller still gets a usable empty store.
	require.NotNil(t, store)
	assert.Equal(t, 0, store.Len())
}

func TestLoadOversizedFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	huge := strings.Repeat("x", MaxFileSize+1)
	require.NoError(t, afero.WriteFile(fs, testPath, []byte(huge), 0600))

	store, err := Load(fs, testPath, 10)
	assert.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestLoadRespectsCapacity(t *testing.T) {
	fs := afero.NewMemMapFs()

	store := NewStore(10)
	for i := 0; i < 10; i++ {
		store.Append(Entry{Timestamp: time.Unix(int64(1600000000+i), 0), Command: "x"})
	}
	require.NoError(t, Save(fs, testPath, store))

	loaded, err := Load(fs, testPath, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Len())

	// The newest records survive.
	newest, ok := loaded.At(3)
	require.True(t, ok)
	assert.Equal(t, time.Unix(1600000009, 0), newest.Timestamp)
}
