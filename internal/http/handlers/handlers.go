// Package handlers wires HTTP routes to the series service.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	appseries "nba-playoffs-service/internal/app/series"
	domainseries "nba-playoffs-service/internal/domain/series"
	"nba-playoffs-service/internal/logging"
	"nba-playoffs-service/internal/poller"
	"nba-playoffs-service/internal/season"
	"nba-playoffs-service/internal/snapshots"
)

type nowFunc func() time.Time

// Handler serves the read-side routes.
type Handler struct {
	svc      *appseries.Service
	snaps    snapshots.Store
	logger   *slog.Logger
	now      nowFunc
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *appseries.Service, snaps snapshots.Store, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		snaps:    snaps,
		logger:   logger,
		now:      time.Now,
		statusFn: statusFn,
	}
}

// Routes registers the read-side routes on a fresh mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.Health)
	mux.HandleFunc("GET /readyz", h.Ready)
	mux.HandleFunc("GET /seasons", h.Seasons)
	mux.HandleFunc("GET /seasons/{year}/series", h.SeasonSeries)
	mux.HandleFunc("GET /seasons/{year}/series/{round}", h.SeasonRound)
	mux.HandleFunc("GET /formats/{format}/outcomes", h.FormatOutcomes)
	return mux
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Seasons lists the loaded season years.
func (h *Handler) Seasons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"seasons": h.svc.Seasons()}, h.logger)
}

// SeasonSeries returns the full bracket for one season.
func (h *Handler) SeasonSeries(w http.ResponseWriter, r *http.Request) {
	year, ok := h.seasonYear(w, r)
	if !ok {
		return
	}
	summaries, ok := h.seasonSummaries(r, year)
	if !ok {
		writeError(w, r, http.StatusNotFound, "season not loaded", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, seasonPayload(year, summaries), h.logger)
}

// SeasonRound returns one round of a season's bracket.
func (h *Handler) SeasonRound(w http.ResponseWriter, r *http.Request) {
	year, ok := h.seasonYear(w, r)
	if !ok {
		return
	}
	round, err := domainseries.ParseRound(r.PathValue("round"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid playoff round", h.logger)
		return
	}
	summaries, ok := h.seasonSummaries(r, year)
	if !ok {
		writeError(w, r, http.StatusNotFound, "season not loaded", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, seasonPayload(year, domainseries.FilterRound(summaries, round)), h.logger)
}

func (h *Handler) seasonYear(w http.ResponseWriter, r *http.Request) (int, bool) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil || year < season.MinYear {
		writeError(w, r, http.StatusBadRequest, "invalid season year", h.logger)
		return 0, false
	}
	return year, true
}

// seasonSummaries serves from the in-memory store first and falls back to a
// disk snapshot, classifying its games on the fly.
func (h *Handler) seasonSummaries(r *http.Request, year int) ([]domainseries.SeriesSummary, bool) {
	if summaries, ok := h.svc.Summaries(year); ok {
		return summaries, true
	}
	if h.snaps == nil {
		return nil, false
	}
	snap, err := h.snaps.LoadSeason(year)
	if err != nil {
		return nil, false
	}
	summaries, err := domainseries.ExtractSeries(year, snap.Games)
	if err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "snapshot classification failed",
			slog.Int(logging.FieldSeason, year),
			slog.Any("error", err),
		)
		return nil, false
	}
	logging.Info(loggerFromContext(r, h.logger), "served snapshot series",
		slog.Int(logging.FieldSeason, year),
		slog.Int(logging.FieldCount, len(summaries)),
	)
	return summaries, true
}

func seasonPayload(year int, summaries []domainseries.SeriesSummary) map[string]any {
	if summaries == nil {
		summaries = []domainseries.SeriesSummary{}
	}
	return map[string]any{
		"season": year,
		"series": summaries,
	}
}

func isClientError(err error) bool {
	return errors.Is(err, domainseries.ErrInvalidToken) ||
		errors.Is(err, domainseries.ErrInvalidGameCount) ||
		errors.Is(err, domainseries.ErrFormatUnrecognized) ||
		errors.Is(err, domainseries.ErrFormatUndefined)
}
