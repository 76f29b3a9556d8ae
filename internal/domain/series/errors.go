package series

import "errors"

// Sentinel errors for playoff series validation. Callers match with errors.Is;
// every failure wraps one of these together with the offending input.
var (
	// ErrInvalidToken reports an unrecognized raw role spelling.
	ErrInvalidToken = errors.New("unrecognized role token")

	// ErrFormatUnrecognized reports a template string matching no known format.
	ErrFormatUnrecognized = errors.New("unrecognized series format")

	// ErrFormatUndefined reports a season/round combination with no defined format.
	ErrFormatUndefined = errors.New("series format undefined")

	// ErrNoWinner reports an outcome string without a strict majority winner.
	ErrNoWinner = errors.New("outcome has no winner")

	// ErrInvalidGameCount reports a game count outside the valid best-of range.
	ErrInvalidGameCount = errors.New("invalid number of games")

	// ErrMissingCriteria reports a key lookup with neither winner nor game count.
	ErrMissingCriteria = errors.New("either winner or games played required")

	// ErrMalformedSeries reports a matchup group without a unique decisive
	// winner, or a season whose series count does not form a full bracket.
	ErrMalformedSeries = errors.New("malformed playoff series")
)
