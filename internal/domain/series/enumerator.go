package series

import (
	"fmt"
	"math/bits"
	"sort"
	"sync"
)

// Enumerator lists every canonical outcome reachable under one format.
// Enumerations are memoized per winning role; the memo belongs to the
// instance, never to the package, so independent formats and seasons can be
// processed side by side. An Enumerator is safe for concurrent use.
type Enumerator struct {
	format Format

	mu   sync.Mutex
	memo map[Role][]Outcome
}

// NewEnumerator constructs an Enumerator for the given format.
func NewEnumerator(format Format) *Enumerator {
	return &Enumerator{
		format: format,
		memo:   make(map[Role][]Outcome, 2),
	}
}

// Format returns the format being enumerated.
func (e *Enumerator) Format() Format {
	return e.format
}

// Outcomes returns the sorted outcomes matching the criteria. With a zero
// winner both sides are enumerated and merged. A non-zero games-played
// filter must lie within [needToWin, bestOf].
func (e *Enumerator) Outcomes(c Criteria) ([]Outcome, error) {
	var all []Outcome
	if c.Winner.Valid() {
		all = append(all, e.forWinner(c.Winner)...)
	} else {
		all = append(all, e.forWinner(Adv)...)
		all = append(all, e.forWinner(Other)...)
		sort.Slice(all, func(i, j int) bool { return all[i].Compare(all[j]) < 0 })
	}

	if c.GamesPlayed == 0 {
		return all, nil
	}
	if c.GamesPlayed < e.format.NeedToWin() || c.GamesPlayed > e.format.BestOf() {
		return nil, fmt.Errorf("%w: %d outside [%d, %d]", ErrInvalidGameCount,
			c.GamesPlayed, e.format.NeedToWin(), e.format.BestOf())
	}
	filtered := all[:0]
	for _, o := range all {
		if o.GamesPlayed() == c.GamesPlayed {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func (e *Enumerator) forWinner(winner Role) []Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	if cached, ok := e.memo[winner]; ok {
		return cached
	}
	outcomes := e.enumerate(winner)
	e.memo[winner] = outcomes
	return outcomes
}

// enumerate walks every arrangement of needToWin wins across bestOf slots.
// Clinch truncation collapses arrangements that differ only after the series
// is decided, so results are deduplicated on the canonical string.
func (e *Enumerator) enumerate(winner Role) []Outcome {
	bestOf := e.format.BestOf()
	needToWin := e.format.NeedToWin()
	loser := winner.Opponent()

	seen := make(map[string]struct{})
	var outcomes []Outcome
	for mask := 0; mask < 1<<bestOf; mask++ {
		if bits.OnesCount(uint(mask)) != needToWin {
			continue
		}
		roles := make([]Role, bestOf)
		for i := 0; i < bestOf; i++ {
			if mask&(1<<i) != 0 {
				roles[i] = winner
			} else {
				roles[i] = loser
			}
		}
		outcome, err := OutcomeFromRoles(roles)
		if err != nil {
			// Unreachable: every arrangement has a strict needToWin majority.
			continue
		}
		if _, dup := seen[outcome.String()]; dup {
			continue
		}
		seen[outcome.String()] = struct{}{}
		outcomes = append(outcomes, outcome)
	}
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].Compare(outcomes[j]) < 0 })
	return outcomes
}
