package series

import (
	"fmt"
	"strings"
	"unicode"
)

// Role marks a team's side of a playoff series: the club holding series
// home-court advantage, or its opponent. The role is assigned per series
// (whoever hosts game 1), never globally per team.
//
// Each role carries two representations: a single-character wire symbol
// ("1"/"2") used in format templates and outcome strings, and a short name
// ("ADV"/"OTHER") used in lookup keys. Downstream code indexes by either.
type Role byte

const (
	// Adv is the team with series home-court advantage.
	Adv Role = '1'
	// Other is the team without series home-court advantage.
	Other Role = '2'
)

// Valid reports whether r is one of the two defined roles.
func (r Role) Valid() bool {
	return r == Adv || r == Other
}

// Symbol returns the single-character wire value.
func (r Role) Symbol() string {
	return string(r)
}

// Name returns the short name used in outcome keys.
func (r Role) Name() string {
	switch r {
	case Adv:
		return "ADV"
	case Other:
		return "OTHER"
	}
	return ""
}

// Opponent returns the opposite role.
func (r Role) Opponent() Role {
	if r == Adv {
		return Other
	}
	return Adv
}

// String implements fmt.Stringer with the short name.
func (r Role) String() string {
	return r.Name()
}

// MarshalJSON encodes the role as its short name.
func (r Role) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidToken, string(r))
	}
	return []byte(`"` + r.Name() + `"`), nil
}

// NormalizeRole maps one raw character to a Role. Historical aliases are
// accepted: Y/H/1 for the advantage holder, N/R/2 for the opponent,
// case-insensitive. Canonical symbols map to themselves.
func NormalizeRole(c rune) (Role, error) {
	switch unicode.ToUpper(c) {
	case '1', 'Y', 'H':
		return Adv, nil
	case '2', 'N', 'R':
		return Other, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidToken, string(c))
}

// ParseRole maps a raw token to a Role, accepting single-character aliases
// and the short names ADV/OTHER.
func ParseRole(token string) (Role, error) {
	trimmed := strings.TrimSpace(token)
	switch strings.ToUpper(trimmed) {
	case Adv.Name():
		return Adv, nil
	case Other.Name():
		return Other, nil
	}
	runes := []rune(trimmed)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}
	return NormalizeRole(runes[0])
}

// NormalizeRoles rewrites a raw role string into canonical symbols.
// Normalization is idempotent: an already-canonical string is returned
// unchanged.
func NormalizeRoles(raw string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		role, err := NormalizeRole(c)
		if err != nil {
			return "", err
		}
		b.WriteByte(byte(role))
	}
	return b.String(), nil
}
