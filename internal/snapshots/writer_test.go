package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"nba-playoffs-service/internal/domain"
)

func sampleSnapshot(season int, gameIDs ...string) domain.SeasonSnapshot {
	games := make([]domain.GameRecord, 0, len(gameIDs))
	for i, id := range gameIDs {
		games = append(games, domain.GameRecord{
			Season:   season,
			GameID:   id,
			Date:     "2016-04-1" + string(rune('0'+i%10)),
			HomeTeam: "GSW",
			AwayTeam: "HOU",
			Winner:   "GSW",
		})
	}
	return domain.NewSeasonSnapshot(season, "2016-06-20", games)
}

func TestWriteSeasonRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, false)

	if err := w.WriteSeason(sampleSnapshot(2015, "g1", "g2")); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}

	got, err := NewFSStore(dir).LoadSeason(2015)
	if err != nil {
		t.Fatalf("failed to load snapshot back: %v", err)
	}
	if len(got.Games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(got.Games))
	}

	m, err := readManifest(filepath.Join(dir, "manifest.json"))
	if err != nil {
		t.Fatalf("failed to read manifest: %v", err)
	}
	if len(m.Seasons.Years) != 1 || m.Seasons.Years[0] != 2015 {
		t.Fatalf("unexpected manifest seasons: %v", m.Seasons.Years)
	}
	if m.Seasons.LastRefreshed.IsZero() {
		t.Fatal("expected manifest refresh time to be set")
	}
}

func TestWriteSeasonBacksUpPreviousCopy(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, true)

	if err := w.WriteSeason(sampleSnapshot(2015, "g1")); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := w.WriteSeason(sampleSnapshot(2015, "g1", "g2")); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	backup := BackupPath(SeasonSnapshotPath(dir, 2015))
	data, err := os.ReadFile(backup)
	if err != nil {
		t.Fatalf("expected backup file: %v", err)
	}
	var old domain.SeasonSnapshot
	if err := json.Unmarshal(data, &old); err != nil {
		t.Fatalf("backup is not valid json: %v", err)
	}
	if len(old.Games) != 1 {
		t.Fatalf("expected backup to hold the previous copy, got %d games", len(old.Games))
	}

	got, err := NewFSStore(dir).LoadSeason(2015)
	if err != nil {
		t.Fatalf("failed to load current snapshot: %v", err)
	}
	if len(got.Games) != 2 {
		t.Fatalf("expected current snapshot with 2 games, got %d", len(got.Games))
	}
}

func TestWriteSeasonUnchangedPayloadSkipsBackup(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, true)

	snap := sampleSnapshot(2015, "g1")
	if err := w.WriteSeason(snap); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := w.WriteSeason(snap); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	if _, err := os.Stat(BackupPath(SeasonSnapshotPath(dir, 2015))); !os.IsNotExist(err) {
		t.Fatalf("expected no backup for identical payload, stat err: %v", err)
	}
}

func TestWriteSeasonSortsGames(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, false)

	snap := domain.NewSeasonSnapshot(2015, "2016-06-20", []domain.GameRecord{
		{Season: 2015, GameID: "g2", Date: "2016-04-18"},
		{Season: 2015, GameID: "g1", Date: "2016-04-16"},
	})
	if err := w.WriteSeason(snap); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := NewFSStore(dir).LoadSeason(2015)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Games[0].GameID != "g1" || got.Games[1].GameID != "g2" {
		t.Fatalf("expected games sorted by date, got %+v", got.Games)
	}
}

func TestWriteSeasonValidation(t *testing.T) {
	var nilWriter *Writer
	if err := nilWriter.WriteSeason(sampleSnapshot(2015)); err == nil {
		t.Fatal("expected error for nil writer")
	}
	w := NewWriter(t.TempDir(), false)
	if err := w.WriteSeason(domain.SeasonSnapshot{}); err == nil {
		t.Fatal("expected error for missing season")
	}
}
