package nbastats

// statsResponse is the envelope every stats.nba.com endpoint returns:
// tabular result sets with parallel header and row arrays.
type statsResponse struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// teamGameRow is one team's line for one game, before home/road pairing.
type teamGameRow struct {
	gameID  string
	date    string
	team    string
	matchup string
	winLoss string
}
