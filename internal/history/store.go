// Package history provides the bounded, persisted shell-command history core:
// an in-memory FIFO store plus the XML reader/writer for its on-disk format.
package history

import (
	"strings"
	"sync"
)

// DefaultMaxSize is the default history capacity when none is configured.
const DefaultMaxSize = 100

// Store is a bounded, ordered collection of executed commands.
// Entries are kept oldest first; when the capacity is exceeded the oldest
// entries are evicted. All methods are safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	entries []string
	maxSize int
}

// New creates a Store with the given capacity.
// A negative capacity falls back to DefaultMaxSize. A capacity of zero is
// valid and yields a store that stays empty.
func New(maxSize int) *Store {
	if maxSize < 0 {
		maxSize = DefaultMaxSize
	}
	return &Store{maxSize: maxSize}
}

// Append trims command and inserts it at the end of the history.
// Commands that are empty after trimming are dropped. If the insertion pushes
// the store past its capacity, the oldest entries are evicted until the
// capacity holds. Append never fails and performs no I/O.
func (s *Store) Append(command string) {
	command = strings.TrimSpace(command)
	if command == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, command)
	if over := len(s.entries) - s.maxSize; over > 0 {
		s.entries = append(s.entries[:0], s.entries[over:]...)
	}
}

// Entries returns a snapshot of the history in chronological order, oldest
// first. The returned slice is a copy; callers may retain or mutate it.
func (s *Store) Entries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]string, len(s.entries))
	copy(snapshot, s.entries)
	return snapshot
}

// Len returns the current number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// MaxSize returns the configured capacity.
func (s *Store) MaxSize() int {
	return s.maxSize
}

// Clear removes all entries.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
