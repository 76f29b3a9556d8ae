package handlers

import (
	"net/http"
	"strconv"
	"strings"

	domainseries "nba-playoffs-service/internal/domain/series"
)

type outcomePayload struct {
	Sequence    string `json:"sequence"`
	Winner      string `json:"winner"`
	GamesPlayed int    `json:"gamesPlayed"`
	Key         string `json:"key"`
}

// FormatOutcomes enumerates the possible outcomes of a series format,
// optionally filtered by winner and games played.
func (h *Handler) FormatOutcomes(w http.ResponseWriter, r *http.Request) {
	format, err := parseFormatParam(r.PathValue("format"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "unknown series format", h.logger)
		return
	}

	criteria, err := parseCriteria(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	outcomes, err := h.svc.OutcomesForFormat(format, criteria)
	if err != nil {
		status := http.StatusInternalServerError
		if isClientError(err) {
			status = http.StatusBadRequest
		}
		writeError(w, r, status, err.Error(), h.logger)
		return
	}

	payload := make([]outcomePayload, 0, len(outcomes))
	for _, o := range outcomes {
		payload = append(payload, outcomePayload{
			Sequence:    o.String(),
			Winner:      o.Winner().Name(),
			GamesPlayed: o.GamesPlayed(),
			Key:         o.Key(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"format":   format.Name(),
		"outcomes": payload,
	}, h.logger)
}

// parseFormatParam accepts the format's name ("best-of-7") or its raw
// hosting template.
func parseFormatParam(raw string) (domainseries.Format, error) {
	if format, err := domainseries.ParseFormatName(raw); err == nil {
		return format, nil
	}
	return domainseries.ParseFormat(raw)
}

func parseCriteria(r *http.Request) (domainseries.Criteria, error) {
	var criteria domainseries.Criteria

	if winner := strings.TrimSpace(r.URL.Query().Get("winner")); winner != "" {
		role, err := domainseries.ParseRole(winner)
		if err != nil {
			return domainseries.Criteria{}, err
		}
		criteria.Winner = role
	}
	if games := strings.TrimSpace(r.URL.Query().Get("games")); games != "" {
		n, err := strconv.Atoi(games)
		if err != nil {
			return domainseries.Criteria{}, err
		}
		criteria.GamesPlayed = n
	}
	return criteria, nil
}
