package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/domain"
)

func TestParseWalltime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{"hours minutes seconds", "01:00:00", time.Hour},
		{"with days", "1-12:30:00", 36*time.Hour + 30*time.Minute},
		{"seconds only", "00:00:45", 45 * time.Second},
		{"multi day", "10-00:00:00", 240 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseWalltime(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Duration() != tt.want {
				t.Errorf("ParseWalltime(%q) = %v, want %v", tt.input, got.Duration(), tt.want)
			}
		})
	}
}

func TestParseWalltime_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "1:00", "01:00:00:00", "-1:00:00"} {
		t.Run(input, func(t *testing.T) {
			_, err := domain.ParseWalltime(input)
			if !errors.Is(err, domain.ErrInvalidWalltime) {
				t.Errorf("ParseWalltime(%q) error = %v, want ErrInvalidWalltime", input, err)
			}
		})
	}
}

func TestWalltime_Scale(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		multiplier float64
		want       string
	}{
		{"identity", "01:00:00", 1.0, "01:00:00"},
		{"identity preserves sub-minute", "00:30:30", 1.0, "00:30:30"},
		{"half again", "01:00:00", 1.5, "01:30:00"},
		{"rounds up to minute", "00:30:30", 1.5, "00:46:00"},
		{"doubling with days", "1-00:00:00", 2.0, "2-00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := domain.ParseWalltime(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := w.Scale(tt.multiplier)
			if got.String() != tt.want {
				t.Errorf("Scale(%v) = %q, want %q", tt.multiplier, got.String(), tt.want)
			}
		})
	}
}

func TestWalltime_ScaleMonotonic(t *testing.T) {
	w, err := domain.ParseWalltime("02:15:45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scaled := w.Scale(1.2); scaled < w {
		t.Errorf("Scale(1.2) = %v shrank below %v", scaled, w)
	}
}

func TestWalltime_String(t *testing.T) {
	if got := domain.Walltime(0).String(); got != "n/a" {
		t.Errorf("zero walltime String() = %q, want n/a", got)
	}
	if got := domain.Walltime(90 * time.Minute).String(); got != "01:30:00" {
		t.Errorf("String() = %q, want 01:30:00", got)
	}
	if got := domain.Walltime(25 * time.Hour).String(); got != "1-01:00:00" {
		t.Errorf("String() = %q, want 1-01:00:00", got)
	}
}
