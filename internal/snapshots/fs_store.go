// Package snapshots caches season game logs on disk so restarts and
// upstream outages do not force a refetch.
package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"nba-playoffs-service/internal/domain"
)

// Store defines how season snapshots are loaded.
type Store interface {
	LoadSeason(seasonYear int) (domain.SeasonSnapshot, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadSeason reads the cached game log for one season from
// {basePath}/seasons/{year}.json.
func (s *FSStore) LoadSeason(seasonYear int) (domain.SeasonSnapshot, error) {
	if s == nil {
		return domain.SeasonSnapshot{}, errors.New("snapshot store not configured")
	}
	var payload domain.SeasonSnapshot
	if err := s.decodeFile(SeasonSnapshotPath(s.basePath, seasonYear), &payload); err != nil {
		return domain.SeasonSnapshot{}, err
	}
	if payload.Season == 0 {
		payload.Season = seasonYear
	}
	if payload.Season != seasonYear {
		return domain.SeasonSnapshot{}, fmt.Errorf("snapshot for season %d holds season %d", seasonYear, payload.Season)
	}
	return payload, nil
}

// Seasons lists the season years with a snapshot on disk, ascending.
func (s *FSStore) Seasons() ([]int, error) {
	if s == nil {
		return nil, errors.New("snapshot store not configured")
	}
	entries, err := os.ReadDir(filepath.Join(s.basePath, "seasons"))
	if err != nil {
		if os.IsNotExist(err) {
			return []int{}, nil
		}
		return nil, err
	}
	var years []int
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		year, err := strconv.Atoi(e.Name()[:len(e.Name())-len(".json")])
		if err != nil {
			continue
		}
		years = append(years, year)
	}
	sort.Ints(years)
	return years, nil
}

func (s *FSStore) decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
