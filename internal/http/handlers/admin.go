package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	appseries "nba-playoffs-service/internal/app/series"
	"nba-playoffs-service/internal/domain"
	domainseries "nba-playoffs-service/internal/domain/series"
	"nba-playoffs-service/internal/http/middleware"
	"nba-playoffs-service/internal/logging"
	"nba-playoffs-service/internal/providers"
	"nba-playoffs-service/internal/season"
	"nba-playoffs-service/internal/snapshots"
	"nba-playoffs-service/internal/timeutil"
)

// AdminHandler exposes the token-guarded refresh endpoint.
type AdminHandler struct {
	svc           *appseries.Service
	writer        *snapshots.Writer
	provider      providers.GameProvider
	token         string
	defaultSeason int
	logger        *slog.Logger
	now           nowFunc
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(svc *appseries.Service, writer *snapshots.Writer, provider providers.GameProvider, token string, defaultSeason int, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		svc:           svc,
		writer:        writer,
		provider:      provider,
		token:         token,
		defaultSeason: defaultSeason,
		logger:        logger,
		now:           time.Now,
	}
}

// Refresh fetches the requested season (defaults to the configured one),
// classifies its series, publishes them, and writes a snapshot. Guarded by
// the admin token; returns 401 if missing or invalid.
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", middleware.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.provider == nil {
		writeError(w, r, http.StatusServiceUnavailable, "provider not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	year := h.defaultSeason
	if raw := strings.TrimSpace(r.URL.Query().Get("season")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < season.MinYear {
			writeError(w, r, http.StatusBadRequest, "invalid season year", logger)
			return
		}
		year = parsed
	}

	games, err := h.provider.FetchPlayoffGames(r.Context(), year)
	if err != nil {
		logging.Warn(logger, "admin refresh fetch failed",
			slog.Int(logging.FieldSeason, year),
			slog.Any("error", err),
		)
		writeError(w, r, http.StatusBadGateway, "failed to fetch games", logger)
		return
	}

	summaries, err := domainseries.ExtractSeries(year, games)
	if err != nil {
		logging.Warn(logger, "admin refresh classification failed",
			slog.Int(logging.FieldSeason, year),
			slog.Int(logging.FieldCount, len(games)),
			slog.Any("error", err),
		)
		writeError(w, r, http.StatusBadGateway, "season games do not form a full bracket", logger)
		return
	}

	h.svc.ReplaceSeries(year, summaries)

	if h.writer != nil {
		snap := domain.NewSeasonSnapshot(year, timeutil.FormatDate(h.now().UTC()), games)
		if err := h.writer.WriteSeason(snap); err != nil {
			logging.Warn(logger, "admin refresh snapshot write failed",
				slog.Int(logging.FieldSeason, year),
				slog.Any("error", err),
			)
			writeError(w, r, http.StatusInternalServerError, "failed to write snapshot", logger)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"season": year,
		"series": len(summaries),
		"games":  len(games),
		"status": "ok",
	}, logger)
	logging.Info(logger, "admin refresh complete",
		slog.Int(logging.FieldSeason, year),
		slog.Int(logging.FieldCount, len(summaries)),
	)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
