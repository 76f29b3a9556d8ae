package nbastats

import (
	"strings"
	"testing"
)

func gameLogResultSet(rows [][]any) resultSet {
	return resultSet{
		Name:    gameLogName,
		Headers: []string{"SEASON_ID", colGameID, colGameDate, colTeam, colMatchup, colWinLoss},
		RowSet:  rows,
	}
}

func TestParseRowsReadsColumnsByHeader(t *testing.T) {
	rs := gameLogResultSet([][]any{
		{"42015", "0041500401", "2016-06-02", "GSW", "GSW vs. CLE", "W"},
		{"42015", "0041500401", "2016-06-02", "CLE", "CLE @ GSW", "L"},
	})

	rows, err := parseRows(rs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].team != "GSW" || rows[0].matchup != "GSW vs. CLE" || rows[0].winLoss != "W" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
}

func TestParseRowsMissingColumn(t *testing.T) {
	rs := resultSet{
		Name:    gameLogName,
		Headers: []string{colGameID, colGameDate, colTeam, colMatchup},
		RowSet:  [][]any{},
	}
	if _, err := parseRows(rs); err == nil || !strings.Contains(err.Error(), colWinLoss) {
		t.Fatalf("expected missing column error naming %s, got %v", colWinLoss, err)
	}
}

func TestParseRowsRejectsBadDate(t *testing.T) {
	rs := gameLogResultSet([][]any{
		{"42015", "0041500401", "JUN 02, 2016", "GSW", "GSW vs. CLE", "W"},
	})
	if _, err := parseRows(rs); err == nil {
		t.Fatal("expected invalid date error")
	}
}

func TestCellHandlesNumericValues(t *testing.T) {
	row := []any{"abc", float64(42), float64(1.5), nil}
	if got := cell(row, 0); got != "abc" {
		t.Errorf("string cell: got %q", got)
	}
	if got := cell(row, 1); got != "42" {
		t.Errorf("integral cell: got %q", got)
	}
	if got := cell(row, 2); got != "1.5" {
		t.Errorf("fractional cell: got %q", got)
	}
	if got := cell(row, 3); got != "" {
		t.Errorf("nil cell: got %q", got)
	}
	if got := cell(row, 9); got != "" {
		t.Errorf("out-of-range cell: got %q", got)
	}
}

func TestPairRowsCombinesTeamLines(t *testing.T) {
	rows := []teamGameRow{
		{gameID: "0041500402", date: "2016-06-05", team: "GSW", matchup: "GSW vs. CLE", winLoss: "L"},
		{gameID: "0041500402", date: "2016-06-05", team: "CLE", matchup: "CLE @ GSW", winLoss: "W"},
		{gameID: "0041500401", date: "2016-06-02", team: "CLE", matchup: "CLE @ GSW", winLoss: "L"},
		{gameID: "0041500401", date: "2016-06-02", team: "GSW", matchup: "GSW vs. CLE", winLoss: "W"},
	}

	records, err := pairRows(2015, rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	first := records[0]
	if first.GameID != "0041500401" {
		t.Fatalf("expected chronological order, first game %s", first.GameID)
	}
	if first.HomeTeam != "GSW" || first.AwayTeam != "CLE" || first.Winner != "GSW" {
		t.Fatalf("unexpected first record: %+v", first)
	}
	second := records[1]
	if second.Winner != "CLE" || second.Season != 2015 {
		t.Fatalf("unexpected second record: %+v", second)
	}
}

func TestPairRowsRejectsUnpairedGame(t *testing.T) {
	rows := []teamGameRow{
		{gameID: "0041500401", date: "2016-06-02", team: "GSW", matchup: "GSW vs. CLE", winLoss: "W"},
	}
	if _, err := pairRows(2015, rows); err == nil {
		t.Fatal("expected error for game with a single team line")
	}
}

func TestPairRowsRejectsInconsistentResults(t *testing.T) {
	rows := []teamGameRow{
		{gameID: "0041500401", date: "2016-06-02", team: "GSW", matchup: "GSW vs. CLE", winLoss: "W"},
		{gameID: "0041500401", date: "2016-06-02", team: "CLE", matchup: "CLE @ GSW", winLoss: "W"},
	}
	if _, err := pairRows(2015, rows); err == nil {
		t.Fatal("expected error when both team lines won")
	}
}

func TestPairRowsRejectsTwoHomeLines(t *testing.T) {
	rows := []teamGameRow{
		{gameID: "0041500401", date: "2016-06-02", team: "GSW", matchup: "GSW vs. CLE", winLoss: "W"},
		{gameID: "0041500401", date: "2016-06-02", team: "CLE", matchup: "CLE vs. GSW", winLoss: "L"},
	}
	if _, err := pairRows(2015, rows); err == nil {
		t.Fatal("expected error when both matchups claim the home side")
	}
}
