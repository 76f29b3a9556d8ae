package nbastats

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"nba-playoffs-service/internal/domain"
	"nba-playoffs-service/internal/timeutil"
)

// parseRows extracts one teamGameRow per row from the game log result set.
func parseRows(rs resultSet) ([]teamGameRow, error) {
	index := make(map[string]int, len(rs.Headers))
	for i, h := range rs.Headers {
		index[h] = i
	}
	for _, col := range []string{colGameID, colGameDate, colTeam, colMatchup, colWinLoss} {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("nbastats: result set %q missing column %s", rs.Name, col)
		}
	}

	rows := make([]teamGameRow, 0, len(rs.RowSet))
	for i, raw := range rs.RowSet {
		row := teamGameRow{
			gameID:  cell(raw, index[colGameID]),
			date:    cell(raw, index[colGameDate]),
			team:    cell(raw, index[colTeam]),
			matchup: cell(raw, index[colMatchup]),
			winLoss: cell(raw, index[colWinLoss]),
		}
		if row.gameID == "" || row.team == "" {
			return nil, fmt.Errorf("nbastats: row %d missing game id or team", i)
		}
		if _, err := timeutil.ParseDate(row.date); err != nil {
			return nil, fmt.Errorf("nbastats: row %d has invalid date %q", i, row.date)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// cell converts one result-set value to a string. The upstream mixes strings
// and numbers within a row.
func cell(row []any, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	switch v := row[i].(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// pairRows joins the two team lines of each game into one GameRecord. The
// MATCHUP column marks the host line with "vs." and the visitor with "@".
func pairRows(seasonYear int, rows []teamGameRow) ([]domain.GameRecord, error) {
	byGame := make(map[string][]teamGameRow)
	ids := make([]string, 0, len(rows)/2)
	for _, row := range rows {
		if _, ok := byGame[row.gameID]; !ok {
			ids = append(ids, row.gameID)
		}
		byGame[row.gameID] = append(byGame[row.gameID], row)
	}

	records := make([]domain.GameRecord, 0, len(ids))
	for _, id := range ids {
		pair := byGame[id]
		if len(pair) != 2 {
			return nil, fmt.Errorf("nbastats: game %s has %d team lines, want 2", id, len(pair))
		}
		rec, err := combine(seasonYear, pair[0], pair[1])
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return records[i].GameID < records[j].GameID
	})
	return records, nil
}

func combine(seasonYear int, a, b teamGameRow) (domain.GameRecord, error) {
	var home, away teamGameRow
	switch {
	case isHomeLine(a.matchup) && !isHomeLine(b.matchup):
		home, away = a, b
	case isHomeLine(b.matchup) && !isHomeLine(a.matchup):
		home, away = b, a
	default:
		return domain.GameRecord{}, fmt.Errorf("nbastats: game %s matchups %q/%q do not form home and road lines",
			a.gameID, a.matchup, b.matchup)
	}

	var winner string
	switch {
	case home.winLoss == "W" && away.winLoss == "L":
		winner = home.team
	case away.winLoss == "W" && home.winLoss == "L":
		winner = away.team
	default:
		return domain.GameRecord{}, fmt.Errorf("nbastats: game %s has inconsistent results %q/%q",
			a.gameID, home.winLoss, away.winLoss)
	}

	return domain.GameRecord{
		Season:   seasonYear,
		GameID:   home.gameID,
		Date:     home.date,
		HomeTeam: home.team,
		AwayTeam: away.team,
		Winner:   winner,
	}, nil
}

func isHomeLine(matchup string) bool {
	return strings.Contains(matchup, "vs.")
}
