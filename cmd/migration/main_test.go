package main

import "testing"

func TestParseSteps(t *testing.T) {
	if got, err := parseSteps(nil); err != nil || got != 1 {
		t.Fatalf("expected default of 1 step, got %d err=%v", got, err)
	}
	if got, err := parseSteps([]string{" 3 "}); err != nil || got != 3 {
		t.Fatalf("expected 3 steps, got %d err=%v", got, err)
	}
	if _, err := parseSteps([]string{"0"}); err == nil {
		t.Fatalf("expected error for zero steps")
	}
	if _, err := parseSteps([]string{"two"}); err == nil {
		t.Fatalf("expected error for non-numeric steps")
	}
}

func TestParseVersion(t *testing.T) {
	if got, err := parseVersion("1"); err != nil || got != 1 {
		t.Fatalf("expected version 1, got %d err=%v", got, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
}

func TestNormalizeDBURL_Flag(t *testing.T) {
	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "yes")
	got := normalizeDBURL("postgres://u:p@localhost:5432/league_registry")
	if got != "postgres://u:p@localhost:5432/league_registry?disable_prepared_binary_result=yes" {
		t.Fatalf("unexpected url: %q", got)
	}

	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
	in := "postgres://u:p@localhost:5432/league_registry"
	if got := normalizeDBURL(in); got != in {
		t.Fatalf("expected url unchanged, got %q", got)
	}
}
