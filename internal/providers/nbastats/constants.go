package nbastats

import "time"

const providerName = "nbastats"

const (
	defaultBaseURL = "https://stats.nba.com/stats"
	defaultReferer = "https://stats.nba.com/scores/"
	// Browser-like agent; the stats site rejects obvious non-browser clients.
	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_12_6) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/61.0.3163.100 Safari/537.36"
	defaultHTTPTimeout = 10 * time.Second

	gameLogEndpoint = "leaguegamelog"
	gameLogName     = "LeagueGameLog"
)

// Result-set column names consumed from the game log table.
const (
	colGameID   = "GAME_ID"
	colGameDate = "GAME_DATE"
	colTeam     = "TEAM_ABBREVIATION"
	colMatchup  = "MATCHUP"
	colWinLoss  = "WL"
)
