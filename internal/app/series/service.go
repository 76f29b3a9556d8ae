// Package series coordinates access to classified playoff series and
// possible-outcome enumeration.
package series

import (
	"sync"

	domainseries "nba-playoffs-service/internal/domain/series"
)

// Store defines the contract for persisting and retrieving series.
type Store interface {
	Series(seasonYear int) ([]domainseries.SeriesSummary, bool)
	SetSeries(seasonYear int, summaries []domainseries.SeriesSummary)
	Seasons() []int
}

// Service coordinates series operations using a Store and keeps one
// outcome enumerator per series format.
type Service struct {
	store Store

	mu          sync.Mutex
	enumerators map[domainseries.Format]*domainseries.Enumerator
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{
		store:       store,
		enumerators: make(map[domainseries.Format]*domainseries.Enumerator),
	}
}

// Summaries returns the full bracket for one season.
func (s *Service) Summaries(seasonYear int) ([]domainseries.SeriesSummary, bool) {
	return s.store.Series(seasonYear)
}

// Round returns one round of a season's bracket.
func (s *Service) Round(seasonYear int, round domainseries.Round) ([]domainseries.SeriesSummary, bool) {
	summaries, ok := s.store.Series(seasonYear)
	if !ok {
		return nil, false
	}
	return domainseries.FilterRound(summaries, round), true
}

// ConferenceQuarterfinals returns the eight first-round series of a season.
func (s *Service) ConferenceQuarterfinals(seasonYear int) ([]domainseries.SeriesSummary, bool) {
	return s.Round(seasonYear, domainseries.ConfQuarters)
}

// ConferenceSemifinals returns the four second-round series of a season.
func (s *Service) ConferenceSemifinals(seasonYear int) ([]domainseries.SeriesSummary, bool) {
	return s.Round(seasonYear, domainseries.ConfSemis)
}

// ConferenceFinals returns the two conference finals of a season.
func (s *Service) ConferenceFinals(seasonYear int) ([]domainseries.SeriesSummary, bool) {
	return s.Round(seasonYear, domainseries.ConfFinals)
}

// Finals returns the championship series of a season.
func (s *Service) Finals(seasonYear int) ([]domainseries.SeriesSummary, bool) {
	return s.Round(seasonYear, domainseries.Finals)
}

// Seasons returns the loaded season years, ascending.
func (s *Service) Seasons() []int {
	return s.store.Seasons()
}

// ReplaceSeries swaps one season's series with a new snapshot.
func (s *Service) ReplaceSeries(seasonYear int, summaries []domainseries.SeriesSummary) {
	s.store.SetSeries(seasonYear, summaries)
}

// PossibleOutcomes enumerates the outcomes a series under the given season
// and round could end with, filtered by the criteria. Enumerators are cached
// per format since their permutation tables never change.
func (s *Service) PossibleOutcomes(seasonYear int, round domainseries.Round, criteria domainseries.Criteria) ([]domainseries.Outcome, error) {
	format, err := domainseries.ChooseFormat(seasonYear, round)
	if err != nil {
		return nil, err
	}
	return s.OutcomesForFormat(format, criteria)
}

// OutcomesForFormat enumerates possible outcomes for a format directly.
func (s *Service) OutcomesForFormat(format domainseries.Format, criteria domainseries.Criteria) ([]domainseries.Outcome, error) {
	return s.enumeratorFor(format).Outcomes(criteria)
}

func (s *Service) enumeratorFor(format domainseries.Format) *domainseries.Enumerator {
	s.mu.Lock()
	defer s.mu.Unlock()

	if enum, ok := s.enumerators[format]; ok {
		return enum
	}
	enum := domainseries.NewEnumerator(format)
	s.enumerators[format] = enum
	return enum
}
