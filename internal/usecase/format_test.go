package usecase

import (
	"testing"
	"time"
)

func TestFormatActionDate(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2025, time.June, 17, 10, 30, 0, 0, time.UTC), "17 June 2025"},
		{time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC), "3 January 2025"},
		{time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC), "31 December 2024"},
	}
	for _, tt := range tests {
		if got := FormatActionDate(tt.in); got != tt.want {
			t.Fatalf("FormatActionDate(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFeedTime(t *testing.T) {
	now := time.Date(2025, time.June, 17, 10, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"same day", now.Add(-2 * time.Hour), "Today, 8:30 AM"},
		{"previous day", now.AddDate(0, 0, -1), "Yesterday, 10:30 AM"},
		{"older", time.Date(2025, time.May, 28, 14, 10, 0, 0, time.UTC), "May 28, 2025, 2:10 PM"},
		{"midnight boundary", time.Date(2025, time.June, 17, 0, 1, 0, 0, time.UTC), "Today, 12:01 AM"},
		{"two days back is absolute", now.AddDate(0, 0, -2), "Jun 15, 2025, 10:30 AM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFeedTime(tt.in, now); got != tt.want {
				t.Fatalf("FormatFeedTime(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateReason(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		allowed bool
	}{
		{"", "", false},
		{"   ", "", false},
		{"\t\n", "", false},
		{"Missing FDA approval", "Missing FDA approval", true},
		{"  padded  ", "padded", true},
	}
	for _, tt := range tests {
		got, ok := ValidateReason(tt.in)
		if ok != tt.allowed || got != tt.want {
			t.Fatalf("ValidateReason(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.allowed)
		}
	}
}
