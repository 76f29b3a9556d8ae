package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"nba-playoffs-service/internal/domain"
)

// Writer persists season snapshots and keeps the manifest current. When
// keepBackups is set, the previous copy of an overwritten snapshot is moved
// aside to {path}.bak instead of being lost.
type Writer struct {
	basePath    string
	keepBackups bool
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string, keepBackups bool) *Writer {
	return &Writer{basePath: basePath, keepBackups: keepBackups}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteSeason writes one season's snapshot. Writes go through a temp file
// and rename so a crash never leaves a torn snapshot behind. An unchanged
// payload only refreshes the manifest.
func (w *Writer) WriteSeason(snapshot domain.SeasonSnapshot) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if snapshot.Season == 0 {
		return fmt.Errorf("snapshot season required")
	}
	sort.Slice(snapshot.Games, func(i, j int) bool {
		if snapshot.Games[i].Date != snapshot.Games[j].Date {
			return snapshot.Games[i].Date < snapshot.Games[j].Date
		}
		return snapshot.Games[i].GameID < snapshot.Games[j].GameID
	})

	target := SeasonSnapshotPath(w.basePath, snapshot.Season)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil {
		if bytes.Equal(existing, data) {
			return w.updateManifest(snapshot.Season)
		}
		if w.keepBackups {
			if err := os.Rename(target, BackupPath(target)); err != nil {
				return err
			}
		}
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(snapshot.Season)
}

func (w *Writer) updateManifest(seasonYear int) error {
	m, _ := readManifest(filepath.Join(w.basePath, "manifest.json"))

	years, err := NewFSStore(w.basePath).Seasons()
	if err != nil {
		return err
	}
	if !containsYear(years, seasonYear) {
		years = append(years, seasonYear)
		sort.Ints(years)
	}
	m.Seasons.Years = years
	m.Seasons.LastRefreshed = time.Now().UTC()

	return writeManifest(w.basePath, m)
}

func containsYear(years []int, year int) bool {
	for _, y := range years {
		if y == year {
			return true
		}
	}
	return false
}
