package history

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// MaxFileSize is the largest history file Load will read. Oversized files
// are rejected outright rather than partially read.
const MaxFileSize = 1 << 20 // 1 MiB

// Load reads a history file into a fresh store of the given capacity.
//
// The file holds one record per line, oldest first, in the form
// "timestamp|exit_code|command_text" with the timestamp in epoch seconds.
// The command text is stored verbatim, so only the first two separators
// are significant. Malformed lines are skipped. If the file holds more
// than capacity records only the newest are retained, matching what
// Append would have done.
func Load(fs afero.Fs, path string, capacity int) (*Store, error) {
	store := NewStore(capacity)

	info, err := fs.Stat(path)
	if err != nil {
		return store, err
	}
	if info.Size() > MaxFileSize {
		return store, fmt.Errorf("history file %s exceeds %d bytes, refusing to load", path, MaxFileSize)
	}

	fd, err := fs.Open(path)
	if err != nil {
		return store, err
	}
	defer fd.Close()

	scanner := bufio.NewScanner(fd)
	for scanner.Scan() {
		entry, ok := parseRecord(scanner.Text())
		if !ok {
			continue
		}
		store.Append(entry)
	}
	if err := scanner.Err(); err != nil {
		return store, err
	}

	return store, nil
}

// Save writes the store to path, replacing any previous contents. Only the
// retained entries are written, oldest first.
func Save(fs afero.Fs, path string, store *Store) error {
	fd, err := fs.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(fd)
	for _, e := range store.Entries() {
		fmt.Fprintf(w, "%d|%d|%s\n", e.Timestamp.Unix(), e.ExitCode, e.Command)
	}

	if err := w.Flush(); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

func parseRecord(line string) (Entry, bool) {
	fields := strings.SplitN(line, "|", 3)
	if len(fields) != 3 {
		return Entry{}, false
	}

	epoch, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Entry{}, false
	}
	code, err := strconv.Atoi(fields[1])
	if err != nil {
		return Entry{}, false
	}

	return Entry{
		Timestamp: time.Unix(epoch, 0),
		ExitCode:  code,
		Command:   fields[2],
	}, true
}
