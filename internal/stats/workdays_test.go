package stats

import (
	"testing"
	"time"
)

func TestIsWorkingDay(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected bool
	}{
		{"Monday", "2025-01-06", true},
		{"Friday", "2025-01-10", true},
		{"Saturday", "2025-01-11", false},
		{"Sunday", "2025-01-12", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := time.Parse("2006-01-02", tt.date)
			if err != nil {
				t.Fatalf("bad test date: %v", err)
			}
			if got := IsWorkingDay(d); got != tt.expected {
				t.Errorf("IsWorkingDay(%s) = %v, want %v", tt.date, got, tt.expected)
			}
		})
	}
}

func TestCountDistinctWorkingDays(t *testing.T) {
	tests := []struct {
		name     string
		dates    []string
		expected int
	}{
		{"Empty", nil, 0},
		{"SingleWorkday", []string{"2025-01-06"}, 1},
		{"DuplicatesCountOnce", []string{"2025-01-06", "2025-01-06", "2025-01-07"}, 2},
		{"WeekendExcluded", []string{"2025-01-11", "2025-01-12"}, 0},
		{"MalformedSkipped", []string{"2025-01-06", "not-a-date", "2025-13-40"}, 1},
		{"MixedWeek", []string{"2025-01-06", "2025-01-07", "2025-01-11", "2025-01-08"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountDistinctWorkingDays(tt.dates); got != tt.expected {
				t.Errorf("CountDistinctWorkingDays() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestCountWorkingDaysInYear(t *testing.T) {
	tests := []struct {
		year     int
		expected int
	}{
		// 2024 is a leap year starting on a Monday: 52*5 + Mon + Tue.
		{2024, 262},
		// 2023 starts on a Sunday: 52*5 + Mon (Jan 2..Dec 31 pattern).
		{2023, 260},
		{2025, 261},
	}

	for _, tt := range tests {
		if got := CountWorkingDaysInYear(tt.year); got != tt.expected {
			t.Errorf("CountWorkingDaysInYear(%d) = %d, want %d", tt.year, got, tt.expected)
		}
	}

	// Deterministic across calls.
	if CountWorkingDaysInYear(2024) != CountWorkingDaysInYear(2024) {
		t.Error("CountWorkingDaysInYear is not deterministic")
	}
}
