package series

import (
	"fmt"
	"strings"
)

// Round identifies one of the four modern playoff rounds. Numeric values
// match the upstream PORound request parameter.
type Round int

const (
	ConfQuarters Round = 1
	ConfSemis    Round = 2
	ConfFinals   Round = 3
	Finals       Round = 4
)

var roundNames = map[Round]string{
	ConfQuarters: "conference-quarterfinals",
	ConfSemis:    "conference-semifinals",
	ConfFinals:   "conference-finals",
	Finals:       "finals",
}

// Valid reports whether r is a defined playoff round.
func (r Round) Valid() bool {
	_, ok := roundNames[r]
	return ok
}

// String returns the canonical round name.
func (r Round) String() string {
	if name, ok := roundNames[r]; ok {
		return name
	}
	return fmt.Sprintf("round(%d)", int(r))
}

// MarshalJSON encodes the round as its canonical name.
func (r Round) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("undefined playoff round %d", int(r))
	}
	return []byte(`"` + r.String() + `"`), nil
}

// UnmarshalJSON decodes a round from its canonical name.
func (r *Round) UnmarshalJSON(data []byte) error {
	name := strings.Trim(string(data), `"`)
	parsed, err := ParseRound(name)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRound maps a round name or PORound digit to a Round. A few common
// shorthand spellings are accepted alongside the canonical names.
func ParseRound(s string) (Round, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "conference-quarterfinals", "quarterfinals", "first-round":
		return ConfQuarters, nil
	case "2", "conference-semifinals", "semifinals":
		return ConfSemis, nil
	case "3", "conference-finals":
		return ConfFinals, nil
	case "4", "finals":
		return Finals, nil
	}
	return 0, fmt.Errorf("unknown playoff round %q", s)
}
