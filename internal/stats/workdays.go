package stats

import (
	"time"

	"archistat/internal/dossier"
)

// IsWorkingDay returns true for Monday through Friday. The center runs no
// holiday calendar; weekends are the only non-working days.
func IsWorkingDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// CountDistinctWorkingDays deduplicates the given date strings to distinct
// calendar dates and counts those falling on a working day. An archivist may
// log several entries on the same date; the date counts once.
//
// Malformed date strings are skipped silently. One bad row must never abort
// an aggregation.
func CountDistinctWorkingDays(dates []string) int {
	seen := make(map[string]bool, len(dates))
	count := 0
	for _, d := range dates {
		if seen[d] {
			continue
		}
		seen[d] = true
		t, err := dossier.ParseDate(d)
		if err != nil {
			continue
		}
		if IsWorkingDay(t) {
			count++
		}
	}
	return count
}

// CountWorkingDaysInYear walks every calendar date from Jan 1 to Dec 31 of
// the given year and counts the working days. Used as the denominator for
// annual coverage.
func CountWorkingDaysInYear(year int) int {
	count := 0
	day := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day.Year() == year {
		if IsWorkingDay(day) {
			count++
		}
		day = day.AddDate(0, 0, 1)
	}
	return count
}
