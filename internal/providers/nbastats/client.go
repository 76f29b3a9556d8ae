package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nba-playoffs-service/internal/domain"
	"nba-playoffs-service/internal/providers"
	"nba-playoffs-service/internal/season"
)

// Config controls how the nbastats client reaches the upstream API.
type Config struct {
	BaseURL    string
	Referer    string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches playoff game logs from stats.nba.com and maps them to
// domain records.
type Client struct {
	baseURL    string
	headers    http.Header
	httpClient httpDoer
}

// NewClient constructs an nbastats client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		headers:    requestHeaders(cfg.UserAgent, cfg.Referer),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchPlayoffGames retrieves one season's playoff game log, one record per
// game with home, road, and winner resolved.
func (c *Client) FetchPlayoffGames(ctx context.Context, seasonYear int) ([]domain.GameRecord, error) {
	s, err := season.New(seasonYear)
	if err != nil {
		return nil, fmt.Errorf("nbastats: %w", err)
	}

	req, err := c.buildRequest(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("nbastats: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload statsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("nbastats: decoding response: %w", err)
	}

	rs, err := findResultSet(payload, gameLogName)
	if err != nil {
		return nil, err
	}
	rows, err := parseRows(rs)
	if err != nil {
		return nil, err
	}
	return pairRows(seasonYear, rows)
}

func (c *Client) buildRequest(ctx context.Context, s season.Season) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+gameLogEndpoint, nil)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = gameLogParams(s).Encode()
	req.Header = c.headers.Clone()
	return req, nil
}

func findResultSet(payload statsResponse, name string) (resultSet, error) {
	for _, rs := range payload.ResultSets {
		if rs.Name == name {
			return rs, nil
		}
	}
	return resultSet{}, fmt.Errorf("nbastats: response has no %q result set", name)
}
