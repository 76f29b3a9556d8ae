package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2016-04-16")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Year() != 2016 || got.Month() != time.April || got.Day() != 16 {
		t.Fatalf("unexpected date: %v", got)
	}
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	if _, err := ParseDate("04/16/2016"); err == nil {
		t.Fatal("expected error for non-canonical layout")
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	want := "2016-06-19"
	parsed, err := ParseDate(want)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatDate(parsed); got != want {
		t.Fatalf("expected %q got %q", want, got)
	}
}
