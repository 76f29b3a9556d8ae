package series

import "fmt"

// Format is a fixed home-court template for a playoff series: the role
// hosting each game, in order, expressed as canonical symbols. Only the
// three templates used since the modern bracket began are defined.
type Format string

const (
	// BestOf7 is the modern 7-game 2-2-1-1-1 template.
	BestOf7 Format = "1122121"
	// BestOf5 is the 5-game 2-2-1 template used for first rounds before the
	// 2002-03 playoffs.
	BestOf5 Format = "11221"
	// FinalsPre2013 is the 7-game 2-3-2 template used for Finals from 1984
	// through 2013.
	FinalsPre2013 Format = "1122211"
)

// minPlayoffsYear is the start of the modern 16-team playoff bracket.
// See https://en.wikipedia.org/wiki/NBA_playoffs#Timeline
const minPlayoffsYear = 1983

// Name returns the catalog name of a known format.
func (f Format) Name() string {
	switch f {
	case BestOf7:
		return "best-of-7"
	case BestOf5:
		return "best-of-5"
	case FinalsPre2013:
		return "finals-pre-2013"
	}
	return ""
}

// BestOf returns the maximum number of games in the series.
func (f Format) BestOf() int {
	return len(f)
}

// NeedToWin returns the number of wins required to take the series.
func (f Format) NeedToWin() int {
	if f.BestOf() == 7 {
		return 4
	}
	return 3
}

// HomeRoles returns the role hosting each game, in order.
func (f Format) HomeRoles() []Role {
	roles := make([]Role, len(f))
	for i := 0; i < len(f); i++ {
		roles[i] = Role(f[i])
	}
	return roles
}

// ParseFormat normalizes every character of raw and matches the result
// against the catalog.
func ParseFormat(raw string) (Format, error) {
	if n := len([]rune(raw)); n != 5 && n != 7 {
		return "", fmt.Errorf("%w: %q has %d games, want 5 or 7", ErrFormatUnrecognized, raw, n)
	}
	norm, err := NormalizeRoles(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrFormatUnrecognized, raw, err)
	}
	switch Format(norm) {
	case BestOf7, BestOf5, FinalsPre2013:
		return Format(norm), nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormatUnrecognized, raw)
}

// ParseFormatName resolves a catalog name (as returned by Name) to a Format.
func ParseFormatName(name string) (Format, error) {
	for _, f := range []Format{BestOf7, BestOf5, FinalsPre2013} {
		if f.Name() == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrFormatUnrecognized, name)
}

// ChooseFormat returns the template in force for a season and playoff round.
// Seasons before the modern bracket have no defined template.
func ChooseFormat(seasonYear int, round Round) (Format, error) {
	if seasonYear < minPlayoffsYear {
		return "", fmt.Errorf("%w: season %d precedes modern playoff formats", ErrFormatUndefined, seasonYear)
	}
	if !round.Valid() {
		return "", fmt.Errorf("%w: %s", ErrFormatUndefined, round)
	}
	switch {
	case round == ConfQuarters && seasonYear < 2002:
		return BestOf5, nil
	case round == Finals && seasonYear < 2013:
		return FinalsPre2013, nil
	}
	return BestOf7, nil
}
