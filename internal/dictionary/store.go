// Package dictionary provides the shared word to definition store and the
// sources it can be seeded from.
package dictionary

import (
	"sort"
	"strings"
	"sync"
)

// Store is a concurrency-safe mapping from word to definition.
// A single Store is shared by every connection.
type Store struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]string),
	}
}

// Get returns the definition of word.
func (s *Store) Get(word string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	definition, ok := s.entries[word]
	return definition, ok
}

// Put inserts or overwrites the definition of word.
// The result is decided against the state before this write.
func (s *Store) Put(word, definition string) PutResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, existed := s.entries[word]
	s.entries[word] = definition
	if existed {
		return Replaced
	}
	return Created
}

// ScanByPrefix returns every entry whose word starts with prefix, sorted by word.
func (s *Store) ScanByPrefix(prefix string) []Entry {
	return s.scan(func(word string) bool {
		return strings.HasPrefix(word, prefix)
	})
}

// ScanBySuffix returns every entry whose word ends with suffix, sorted by word.
func (s *Store) ScanBySuffix(suffix string) []Entry {
	return s.scan(func(word string) bool {
		return strings.HasSuffix(word, suffix)
	})
}

func (s *Store) scan(match func(word string) bool) []Entry {
	s.mu.RLock()
	result := make([]Entry, 0)
	for word, definition := range s.entries {
		if match(word) {
			result = append(result, Entry{Word: word, Definition: definition})
		}
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].Word < result[j].Word
	})
	return result
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// Load puts every entry into the store and returns how many of them were new.
func (s *Store) Load(entries []Entry) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := 0
	for _, entry := range entries {
		if _, ok := s.entries[entry.Word]; !ok {
			created++
		}
		s.entries[entry.Word] = entry.Definition
	}
	return created
}
