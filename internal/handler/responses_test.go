package handler

import (
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	if got := formatTimestamp(time.Time{}); got != nil {
		t.Errorf("zero time must serialize as nil, got %q", *got)
	}

	ts := time.Date(2025, 6, 1, 14, 30, 0, 500000000, time.FixedZone("CEST", 2*3600))
	got := formatTimestamp(ts)
	if got == nil {
		t.Fatal("expected a formatted timestamp")
	}
	if *got != "2025-06-01T12:30:00.5Z" {
		t.Errorf("expected UTC RFC 3339 rendering, got %q", *got)
	}

	parsed, err := time.Parse(time.RFC3339Nano, *got)
	if err != nil {
		t.Fatal(err)
	}
	if !parsed.Equal(ts) {
		t.Errorf("rendering must preserve the instant: %v != %v", parsed, ts)
	}
}
