package snapshots

import (
	"fmt"
	"path/filepath"
)

// SeasonSnapshotPath builds the path to a season's cached game log.
func SeasonSnapshotPath(basePath string, seasonYear int) string {
	return filepath.Join(basePath, "seasons", fmt.Sprintf("%d.json", seasonYear))
}

// BackupPath is where the previous copy of a snapshot lands on overwrite.
func BackupPath(path string) string {
	return path + ".bak"
}
