package providers

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestRateLimitErrorMessage(t *testing.T) {
	err := &RateLimitError{Provider: "nbastats", StatusCode: 429, Message: "too many requests"}
	if got := err.Error(); got != "too many requests (status=429)" {
		t.Fatalf("unexpected message: %q", got)
	}

	bare := &RateLimitError{}
	if got := bare.Error(); got != "provider rate limited" {
		t.Fatalf("unexpected default message: %q", got)
	}
}

func TestAsRateLimitErrorUnwraps(t *testing.T) {
	rl := &RateLimitError{Provider: "nbastats", RetryAfter: 2 * time.Second}
	wrapped := fmt.Errorf("fetch season 2015: %w", rl)

	got, ok := AsRateLimitError(wrapped)
	if !ok {
		t.Fatal("expected wrapped rate limit error to unwrap")
	}
	if got.RetryAfter != 2*time.Second {
		t.Fatalf("unexpected retry-after: %v", got.RetryAfter)
	}

	if _, ok := AsRateLimitError(errors.New("plain")); ok {
		t.Fatal("plain error should not unwrap to a rate limit error")
	}
}
