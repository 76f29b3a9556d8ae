package domain

// GameRecord is one playoff game as supplied by the stats provider,
// expressed in actual team identities. Dates use the YYYY-MM-DD layout.
type GameRecord struct {
	Season   int    `json:"season"`
	GameID   string `json:"gameId"`
	Date     string `json:"date"`
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	Winner   string `json:"winner"`
}

// SeasonSnapshot is the on-disk payload cached per season.
type SeasonSnapshot struct {
	Season    int          `json:"season"`
	FetchedAt string       `json:"fetchedAt"`
	Games     []GameRecord `json:"games"`
}

// NewSeasonSnapshot builds a snapshot payload for one season's games.
func NewSeasonSnapshot(season int, fetchedAt string, games []GameRecord) SeasonSnapshot {
	if games == nil {
		games = []GameRecord{}
	}
	return SeasonSnapshot{
		Season:    season,
		FetchedAt: fetchedAt,
		Games:     games,
	}
}
