package series

// GameResult is one game's result expressed relative to the series roles:
// which role hosted and which role won.
type GameResult struct {
	Home   Role `json:"home"`
	Winner Role `json:"winner"`
}

// SeriesSummary is the derived record for one completed playoff series.
// It is built once by ExtractSeries and read-only thereafter.
type SeriesSummary struct {
	Season      int      `json:"season"`
	Round       Round    `json:"round"`
	BestOf      int      `json:"bestOf"`
	GamesPlayed int      `json:"gamesPlayed"`
	AdvTeam     string   `json:"advTeam"`
	OtherTeam   string   `json:"otherTeam"`
	WinnerTeam  string   `json:"winnerTeam"`
	HomeTeams   []string `json:"homeTeams"`
	GameWinners []string `json:"gameWinners"`
	GameIDs     []string `json:"gameIds"`
}

// Outcome converts the per-game winner teams to the canonical outcome.
func (s SeriesSummary) Outcome() (Outcome, error) {
	return OutcomeFromRoles(s.roleSeq(s.GameWinners))
}

// HomeRoles returns which role hosted each game.
func (s SeriesSummary) HomeRoles() []Role {
	return s.roleSeq(s.HomeTeams)
}

// GameResults pairs each game's host and winner, relative to the series
// role assignment.
func (s SeriesSummary) GameResults() []GameResult {
	homes := s.roleSeq(s.HomeTeams)
	winners := s.roleSeq(s.GameWinners)
	results := make([]GameResult, len(homes))
	for i := range homes {
		results[i] = GameResult{Home: homes[i], Winner: winners[i]}
	}
	return results
}

func (s SeriesSummary) roleSeq(teams []string) []Role {
	roles := make([]Role, len(teams))
	for i, team := range teams {
		if team == s.AdvTeam {
			roles[i] = Adv
		} else {
			roles[i] = Other
		}
	}
	return roles
}
