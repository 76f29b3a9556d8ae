package nbastats

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

// parseRetryAfter reads a Retry-After header given in whole seconds.
// HTTP-date forms are rare from this upstream and are ignored.
func parseRetryAfter(header string) time.Duration {
	header = strings.TrimSpace(header)
	if header == "" {
		return 0
	}
	secs, err := strconv.Atoi(header)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

func requestHeaders(userAgent, referer string) http.Header {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	if referer == "" {
		referer = defaultReferer
	}
	h := http.Header{}
	h.Set("User-Agent", userAgent)
	h.Set("Referer", referer)
	h.Set("Dnt", "1")
	// Accept-Encoding is left to the transport so gzip bodies decompress
	// transparently.
	h.Set("Accept-Language", "en")
	h.Set("Origin", "https://stats.nba.com")
	h.Set("Cache-Control", "max-age=0")
	h.Set("Connection", "keep-alive")
	return h
}
