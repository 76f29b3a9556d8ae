// Package season models NBA season identifiers: the start-year form used
// internally and the "2015-16" text form used by the upstream stats API.
package season

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinYear is the earliest season the upstream site carries full stats for.
const MinYear = 1996

// Season identifies an NBA season by its start year.
type Season struct {
	startYear int
}

// New constructs a Season from its start year.
func New(startYear int) (Season, error) {
	if startYear < MinYear {
		return Season{}, fmt.Errorf("invalid season start year %d, earliest is %d", startYear, MinYear)
	}
	return Season{startYear: startYear}, nil
}

// Parse constructs a Season from its text form, e.g. "2015-16".
func Parse(text string) (Season, error) {
	parts := strings.SplitN(text, "-", 2)
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return Season{}, fmt.Errorf("invalid season text %q, want YYYY-YY", text)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return Season{}, fmt.Errorf("invalid season text %q: %v", text, err)
	}
	s, err := New(start)
	if err != nil {
		return Season{}, err
	}
	if s.Text() != text {
		return Season{}, fmt.Errorf("inconsistent season text %q, want %q", text, s.Text())
	}
	return s, nil
}

// FromID constructs a Season from an upstream season ID, whose last four
// digits carry the start year.
func FromID(seasonID string) (Season, error) {
	if len(seasonID) < 4 {
		return Season{}, fmt.Errorf("invalid season id %q", seasonID)
	}
	year, err := strconv.Atoi(seasonID[len(seasonID)-4:])
	if err != nil {
		return Season{}, fmt.Errorf("invalid season id %q: %v", seasonID, err)
	}
	return New(year)
}

// Current returns the season in progress: a new season starts after June.
func Current() Season {
	return CurrentAt(time.Now())
}

// CurrentAt returns the season in progress at the given instant.
func CurrentAt(t time.Time) Season {
	year := t.Year()
	if t.Month() <= time.June {
		year--
	}
	return Season{startYear: year}
}

// StartYear returns the year the season's regular schedule began.
func (s Season) StartYear() int {
	return s.startYear
}

// Text returns the upstream text form, e.g. "2015-16".
func (s Season) Text() string {
	next := (s.startYear + 1) % 100
	return fmt.Sprintf("%d-%02d", s.startYear, next)
}

// String implements fmt.Stringer with the text form.
func (s Season) String() string {
	return s.Text()
}

// Type distinguishes regular-season games from playoff games. Values are
// the upstream SeasonType parameter spellings.
type Type string

const (
	Regular  Type = "Regular Season"
	Playoffs Type = "Playoffs"
)

// TypeFromID derives the season type from an upstream season ID, whose
// first digit is 2 for regular season and 4 for playoffs.
func TypeFromID(seasonID string) (Type, error) {
	if seasonID == "" {
		return "", fmt.Errorf("empty season id")
	}
	switch seasonID[0] {
	case '2':
		return Regular, nil
	case '4':
		return Playoffs, nil
	}
	return "", fmt.Errorf("unrecognized season id %q", seasonID)
}
