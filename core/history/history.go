// Package history records executed commands and resolves "!" references
// against them.
package history

import (
	"strings"
	"time"
)

// DefaultCapacity is the number of entries a store retains unless
// configured otherwise.
const DefaultCapacity = 100

// Entry is one completed invocation record. Entries are never mutated
// after they are appended.
type Entry struct {
	// Timestamp is the wall-clock time the command ran.
	Timestamp time.Time
	// ExitCode is the command's result; children killed by a signal
	// record a negative sentinel.
	ExitCode int
	// Command is the executed line, after history expansion.
	Command string
}

// Store is a fixed-capacity chronological list of entries. When full, the
// oldest entry is evicted to make room for a new one. Capacity is small so
// eviction shifts in place rather than using a circular index.
type Store struct {
	capacity int
	entries  []Entry
}

// NewStore creates an empty store holding at most capacity entries.
// Non-positive capacities fall back to DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		capacity: capacity,
		entries:  make([]Entry, 0, capacity),
	}
}

// Capacity returns the maximum number of entries the store retains.
func (s *Store) Capacity() int {
	return s.capacity
}

// Len returns the number of retained entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Append records an entry as the newest, evicting the oldest if the store
// is full.
func (s *Store) Append(e Entry) {
	if len(s.entries) == s.capacity {
		copy(s.entries, s.entries[1:])
		s.entries[len(s.entries)-1] = e
		return
	}
	s.entries = append(s.entries, e)
}

// At returns the n-th entry in chronological order, 1-based: At(1) is the
// oldest retained entry.
func (s *Store) At(n int) (Entry, bool) {
	if n < 1 || n > len(s.entries) {
		return Entry{}, false
	}
	return s.entries[n-1], true
}

// LastByPrefix returns the most recently appended entry whose command text
// starts with prefix.
func (s *Store) LastByPrefix(prefix string) (Entry, bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if strings.HasPrefix(s.entries[i].Command, prefix) {
			return s.entries[i], true
		}
	}
	return Entry{}, false
}

// Entries returns a copy of the retained entries, oldest first.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clear drops every retained entry.
func (s *Store) Clear() {
	s.entries = s.entries[:0]
}
