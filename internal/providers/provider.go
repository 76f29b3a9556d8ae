package providers

import (
	"context"
	"errors"

	"nba-playoffs-service/internal/domain"
)

// ErrProviderUnavailable reports a provider that is not configured or wired.
var ErrProviderUnavailable = errors.New("game provider unavailable")

// GameProvider defines how one season's playoff game results are fetched and
// normalized. The season is given as its start year; implementations return
// every playoff game of that season, one record per game.
type GameProvider interface {
	FetchPlayoffGames(ctx context.Context, seasonYear int) ([]domain.GameRecord, error)
}
