package series

import (
	"encoding/json"
	"testing"
)

func TestRoundNames(t *testing.T) {
	cases := map[Round]string{
		ConfQuarters: "conference-quarterfinals",
		ConfSemis:    "conference-semifinals",
		ConfFinals:   "conference-finals",
		Finals:       "finals",
	}
	for round, want := range cases {
		if got := round.String(); got != want {
			t.Fatalf("expected %q got %q", want, got)
		}
		if !round.Valid() {
			t.Fatalf("round %s reported invalid", want)
		}
	}
	if Round(0).Valid() || Round(5).Valid() {
		t.Fatal("out-of-range rounds reported valid")
	}
}

func TestParseRound(t *testing.T) {
	cases := map[string]Round{
		"1":                        ConfQuarters,
		"conference-quarterfinals": ConfQuarters,
		"first-round":              ConfQuarters,
		"semifinals":               ConfSemis,
		"3":                        ConfFinals,
		"Finals":                   Finals,
	}
	for raw, want := range cases {
		got, err := ParseRound(raw)
		if err != nil {
			t.Fatalf("ParseRound(%q): unexpected error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseRound(%q): expected %s got %s", raw, want, got)
		}
	}
	if _, err := ParseRound("play-in"); err == nil {
		t.Fatal("expected error for unknown round")
	}
}

func TestRoundJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Finals)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"finals"` {
		t.Fatalf("expected %q got %q", `"finals"`, data)
	}
	var r Round
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != Finals {
		t.Fatalf("expected Finals got %s", r)
	}
}
