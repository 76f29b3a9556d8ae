package series

import (
	"fmt"
	"strings"
)

// Outcome is the canonical result of one playoff series: the per-game winner
// sequence relative to the advantage holder, truncated at the clinching game.
// An Outcome is validated at construction and never mutated.
type Outcome struct {
	seq string
}

// OutcomeFromRoles builds an Outcome from the ordered per-game winners.
// Games recorded after the clinch are dropped, so noisy input longer than
// the clinched series is accepted.
func OutcomeFromRoles(winners []Role) (Outcome, error) {
	syms := make([]byte, len(winners))
	for i, r := range winners {
		if !r.Valid() {
			return Outcome{}, fmt.Errorf("%w: game %d winner %q", ErrInvalidToken, i+1, string(r))
		}
		syms[i] = byte(r)
	}
	return newOutcome(string(syms))
}

// ParseOutcome builds an Outcome from a raw winner string, accepting the
// role aliases understood by NormalizeRoles.
func ParseOutcome(raw string) (Outcome, error) {
	norm, err := NormalizeRoles(raw)
	if err != nil {
		return Outcome{}, err
	}
	return newOutcome(norm)
}

func newOutcome(s string) (Outcome, error) {
	advWins := strings.Count(s, Adv.Symbol())
	otherWins := strings.Count(s, Other.Symbol())

	var winner Role
	var wins int
	switch {
	case advWins > otherWins:
		winner, wins = Adv, advWins
	case otherWins > advWins:
		winner, wins = Other, otherWins
	default:
		return Outcome{}, fmt.Errorf("%w: %q", ErrNoWinner, s)
	}
	if wins != 3 && wins != 4 {
		return Outcome{}, fmt.Errorf("%w: %q decided with %d wins, want 3 or 4", ErrInvalidGameCount, s, wins)
	}

	// Truncate at the clinching game; anything after it is noise.
	clinch := strings.LastIndex(s, winner.Symbol())
	return Outcome{seq: s[:clinch+1]}, nil
}

// Winner returns the role that took the series.
func (o Outcome) Winner() Role {
	return Role(o.seq[len(o.seq)-1])
}

// GamesPlayed returns the number of games up to and including the clinch.
func (o Outcome) GamesPlayed() int {
	return len(o.seq)
}

// BestOf returns the series length implied by the winner's win count.
func (o Outcome) BestOf() int {
	if strings.Count(o.seq, o.Winner().Symbol()) == 3 {
		return 5
	}
	return 7
}

// PerGameWinners returns the ordered per-game winners.
func (o Outcome) PerGameWinners() []Role {
	winners := make([]Role, len(o.seq))
	for i := 0; i < len(o.seq); i++ {
		winners[i] = Role(o.seq[i])
	}
	return winners
}

// String returns the canonical symbol string.
func (o Outcome) String() string {
	return o.seq
}

// Key returns the "<winner> in <games>" lookup form, e.g. "ADV in 5".
func (o Outcome) Key() string {
	return fmt.Sprintf("%s in %d", o.Winner().Name(), o.GamesPlayed())
}

// Equal reports whether two outcomes have the same canonical string.
func (o Outcome) Equal(other Outcome) bool {
	return o.seq == other.seq
}

// Compare defines the total ordering over outcomes: fewer games played sorts
// first; for equal length the first differing symbol decides; identical
// strings compare equal.
func (o Outcome) Compare(other Outcome) int {
	if d := o.GamesPlayed() - other.GamesPlayed(); d != 0 {
		return d
	}
	switch {
	case o.seq < other.seq:
		return -1
	case o.seq > other.seq:
		return 1
	}
	return 0
}

// Criteria selects outcomes by winner, games played, or both. The zero value
// of either field means unspecified.
type Criteria struct {
	Winner      Role
	GamesPlayed int
}

// KeyFrom renders the lookup key fragment for the supplied criteria. At
// least one criterion must be set.
func KeyFrom(c Criteria) (string, error) {
	if c.GamesPlayed != 0 && (c.GamesPlayed < 3 || c.GamesPlayed > 7) {
		return "", fmt.Errorf("%w: %d", ErrInvalidGameCount, c.GamesPlayed)
	}
	switch {
	case c.Winner.Valid() && c.GamesPlayed != 0:
		return fmt.Sprintf("%s in %d", c.Winner.Name(), c.GamesPlayed), nil
	case c.Winner.Valid():
		return c.Winner.Name(), nil
	case c.GamesPlayed != 0:
		return fmt.Sprintf("in %d", c.GamesPlayed), nil
	}
	return "", ErrMissingCriteria
}

// KeysMatch reports whether key contains the fragment built from the
// criteria.
func KeysMatch(key string, c Criteria) (bool, error) {
	fragment, err := KeyFrom(c)
	if err != nil {
		return false, err
	}
	return strings.Contains(key, fragment), nil
}
