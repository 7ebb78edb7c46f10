// Package history holds the shell's command history and the bang-expansion
// grammar that refers back into it.
package history

import "strings"

// Entry is a single dispatched command line. Entries are values and never
// change once they've been appended.
type Entry struct {
	// Index is the 1-based sequence number assigned at append time.
	Index int
	// Text is the resolved line that was dispatched.
	Text string
}

// Store is an append-only log of command lines with stable numbering.
//
// The first appended line is always number 1 and numbers are never reused,
// even when a capacity bound causes old entries to be dropped.
type Store struct {
	entries []Entry
	next    int
	limit   int
}

// NewStore creates an empty store. If limit is greater than zero, at most
// limit entries are retained and the oldest ones are dropped first.
func NewStore(limit int) *Store {
	if limit < 0 {
		limit = 0
	}
	return &Store{next: 1, limit: limit}
}

// Append records text as the newest entry and returns its index.
func (s *Store) Append(text string) int {
	idx := s.next
	s.next++
	s.entries = append(s.entries, Entry{Index: idx, Text: text})

	if s.limit > 0 && len(s.entries) > s.limit {
		drop := len(s.entries) - s.limit
		s.entries = append(s.entries[:0:0], s.entries[drop:]...)
	}

	return idx
}

// Len returns the number of retained entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Get looks up an entry by its absolute index.
func (s *Store) Get(index int) (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}

	// Retained indexes are contiguous so the position is a direct offset.
	pos := index - s.entries[0].Index
	if pos < 0 || pos >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[pos], true
}

// Last looks up an entry relative to the newest one, n = 1 is the most recent
// entry, 2 the one before it and so on.
func (s *Store) Last(n int) (Entry, bool) {
	if n < 1 || n > len(s.entries) {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-n], true
}

// FindPrefix returns the most recent entry whose text starts with prefix.
func (s *Store) FindPrefix(prefix string) (Entry, bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if strings.HasPrefix(s.entries[i].Text, prefix) {
			return s.entries[i], true
		}
	}
	return Entry{}, false
}

// Snapshot returns a copy of the retained entries in ascending index order.
func (s *Store) Snapshot() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Tail returns up to the n most recent entries in ascending index order.
func (s *Store) Tail(n int) []Entry {
	if n <= 0 {
		return []Entry{}
	}
	if n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]Entry, n)
	copy(out, s.entries[len(s.entries)-n:])
	return out
}
