package nbastats

import (
	"net/url"

	"nba-playoffs-service/internal/season"
)

// gameLogParams builds the query for one season's playoff game log.
// url.Values encodes in sorted key order, which the upstream site expects.
func gameLogParams(s season.Season) url.Values {
	q := url.Values{}
	q.Set("LeagueID", "00")
	q.Set("Season", s.Text())
	q.Set("SeasonType", string(season.Playoffs))
	q.Set("PlayerOrTeam", "T")
	q.Set("Counter", "1000")
	q.Set("Sorter", "DATE")
	q.Set("Direction", "ASC")
	return q
}
