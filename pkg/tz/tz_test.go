package tz

import (
	"testing"
	"time"
)

func TestYearUsesLima(t *testing.T) {
	// 03:00 UTC on Jan 1 is still Dec 31 in Lima.
	utc := time.Date(2026, time.January, 1, 3, 0, 0, 0, time.UTC)
	if got := Year(utc); got != 2025 {
		t.Fatalf("Year() = %d, want 2025", got)
	}
	if got := Year(utc.Add(3 * time.Hour)); got != 2026 {
		t.Fatalf("Year() = %d, want 2026", got)
	}
}
