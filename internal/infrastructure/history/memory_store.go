// Package history provides bounded stores for answered queries.
package history

import (
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/doeshing/calcagent/internal/domain"
	"github.com/doeshing/calcagent/internal/ports"
)

// DefaultCapacity bounds a store when no explicit capacity is configured.
const DefaultCapacity = 100

// MemoryStore keeps history in process memory. Insertion order is preserved
// and the oldest entry is evicted whenever an insert would exceed capacity.
// Nothing survives process exit.
type MemoryStore struct {
	mu      sync.Mutex
	entries []domain.HistoryEntry
	max     int
}

// NewMemoryStore creates a store holding at most max entries.
func NewMemoryStore(max int) *MemoryStore {
	if max <= 0 {
		max = DefaultCapacity
	}
	return &MemoryStore{max: max}
}

// Record appends an entry, evicting the single oldest one at capacity.
func (s *MemoryStore) Record(entry domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	if len(s.entries) > s.max {
		s.entries = s.entries[1:]
	}
	return nil
}

// Recent returns entries most-recent-first, at most limit when limit > 0.
func (s *MemoryStore) Recent(limit int) ([]domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.HistoryEntry, 0, n)
	for i := len(s.entries) - 1; i >= len(s.entries)-n; i-- {
		out = append(out, s.entries[i])
	}
	return out, nil
}

// Latest returns the newest entry, if any.
func (s *MemoryStore) Latest() (domain.HistoryEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return domain.HistoryEntry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Search returns entries whose query or result contains the keyword,
// case-insensitively, in insertion order.
func (s *MemoryStore) Search(keyword string) ([]domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kw := strings.ToLower(keyword)
	var matches []domain.HistoryEntry
	for _, entry := range s.entries {
		if strings.Contains(strings.ToLower(entry.Query), kw) ||
			strings.Contains(strings.ToLower(entry.Result), kw) {
			matches = append(matches, entry)
		}
	}
	return matches, nil
}

// Clear removes all entries.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}

// Count returns the number of stored entries.
func (s *MemoryStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// ExportJSON writes all entries, oldest first, to a jsonl file.
func (s *MemoryStore) ExportJSON(dest string) error {
	s.mu.Lock()
	entries := make([]domain.HistoryEntry, len(s.entries))
	copy(entries, s.entries)
	s.mu.Unlock()

	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()
	for _, entry := range entries {
		b, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		if _, err := file.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

var _ ports.HistoryRepository = (*MemoryStore)(nil)
