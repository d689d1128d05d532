package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   time.Duration
		want  time.Duration
	}{
		{"valid hours", "24h", time.Minute, 24 * time.Hour},
		{"valid mixed", "1h30m", time.Minute, 90 * time.Minute},
		{"invalid falls back", "one day", time.Minute, time.Minute},
		{"empty falls back", "", 5 * time.Second, 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDuration(tt.input, tt.def); got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateOnly(t *testing.T) {
	got, err := DateOnly("2026-08-29")
	if err != nil {
		t.Fatalf("DateOnly: %v", err)
	}
	want := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOnly = %v, want %v", got, want)
	}

	if _, err := DateOnly("29/08/2026"); err == nil {
		t.Error("DateOnly accepted a slash-separated date")
	}
	if _, err := DateOnly("2026-13-01"); err == nil {
		t.Error("DateOnly accepted month 13")
	}
}
