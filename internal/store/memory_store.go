// Package store keeps the classified series for each season in memory.
package store

import (
	"sort"
	"sync"

	"nba-playoffs-service/internal/domain/series"
)

// MemoryStore keeps a thread-safe snapshot of series summaries per season.
type MemoryStore struct {
	mu      sync.RWMutex
	seasons map[int][]series.SeriesSummary
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		seasons: make(map[int][]series.SeriesSummary),
	}
}

// Series returns a copy of the stored series for one season in bracket
// order, or false when the season has not been loaded.
func (s *MemoryStore) Series(seasonYear int) ([]series.SeriesSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.seasons[seasonYear]
	if !ok {
		return nil, false
	}
	result := make([]series.SeriesSummary, len(stored))
	copy(result, stored)
	return result, true
}

// SetSeries replaces the stored series for one season.
func (s *MemoryStore) SetSeries(seasonYear int, summaries []series.SeriesSummary) {
	snapshot := make([]series.SeriesSummary, len(summaries))
	copy(snapshot, summaries)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seasons[seasonYear] = snapshot
}

// Seasons returns the loaded season years, ascending.
func (s *MemoryStore) Seasons() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	years := make([]int, 0, len(s.seasons))
	for year := range s.seasons {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
