package stats

import (
	"time"

	"archistat/internal/dossier"
)

// attainment applies the threshold rule shared by every period view.
//
// At or above the reach threshold the rate is measured against the full
// target and may exceed 100. Below it the rate is rescaled so that exactly
// reaching the threshold maps to 90 and zero maps to 0. The scale is
// deliberately non-linear: the last 10 points are compressed above the
// threshold, the first 90 stretched below it.
//
// Zero denominators (target or threshold) yield a rate of 0, never a fault.
func attainment(total, target, reach float64) (attained bool, rate float64) {
	if total >= reach {
		attained = true
		if target > 0 {
			rate = Round2(total / target * 100)
		}
		return attained, rate
	}
	if reach > 0 {
		rate = Round2(total / reach * 90)
	}
	return false, rate
}

// inScope reports whether the entry's date falls in [from, to]. Bounds are
// inclusive; a zero bound is open. Entries with malformed dates are out of
// every scope but never abort the aggregation.
func inScope(e dossier.Entry, from, to time.Time) bool {
	d, err := dossier.ParseDate(e.Date)
	if err != nil {
		return false
	}
	if !from.IsZero() && d.Before(from) {
		return false
	}
	if !to.IsZero() && d.After(to) {
		return false
	}
	return true
}

// FilterScope returns the entries within [from, to], optionally narrowed to
// one archivist by exact name match.
func FilterScope(entries []dossier.Entry, from, to time.Time, archivist string) []dossier.Entry {
	var scoped []dossier.Entry
	for _, e := range entries {
		if archivist != "" && e.Archivist != archivist {
			continue
		}
		if inScope(e, from, to) {
			scoped = append(scoped, e)
		}
	}
	return scoped
}

// PeriodPerformance sums the entries in [from, to] and applies the
// attainment rule against expectedDays worth of the daily target.
//
// The no-entries case is a valid zero result with Gap = -reach, not an
// error.
func PeriodPerformance(entries []dossier.Entry, from, to time.Time, expectedDays int, s dossier.Settings) Performance {
	total := 0
	for _, e := range FilterScope(entries, from, to, "") {
		total += e.Count
	}

	target := float64(s.DailyTarget) * float64(expectedDays)
	reach := target * s.Threshold
	attained, rate := attainment(float64(total), target, reach)

	return Performance{
		Total:          total,
		Target:         target,
		ReachThreshold: reach,
		Attained:       attained,
		Rate:           rate,
		Gap:            float64(total) - reach,
	}
}

// DailyPerformance measures one calendar day against the daily target.
func DailyPerformance(entries []dossier.Entry, day time.Time, s dossier.Settings) Performance {
	return PeriodPerformance(entries, day, day, 1, s)
}

// WeeklyPerformance measures the Monday-to-Sunday week containing asOf
// against a fixed 5-working-day target. The fixed factor does not adjust
// for holidays or partial weeks at range boundaries; that simplification is
// intentional.
func WeeklyPerformance(entries []dossier.Entry, asOf time.Time, s dossier.Settings) Performance {
	start := WeekStart(asOf)
	return PeriodPerformance(entries, start, start.AddDate(0, 0, 6), 5, s)
}

// Last30DaysPerformance measures the 30 calendar days ending at asOf,
// inclusive. Like the per-archivist averaged views, the window is judged as
// a daily average over the days actually worked, compared to the plain
// daily target; Total still carries the raw window sum for display.
func Last30DaysPerformance(entries []dossier.Entry, asOf time.Time, s dossier.Settings) Performance {
	from := asOf.AddDate(0, 0, -29)
	scoped := FilterScope(entries, from, asOf, "")

	dates := make([]string, 0, len(scoped))
	total := 0
	for _, e := range scoped {
		dates = append(dates, e.Date)
		total += e.Count
	}

	// The window is measured like the averaged views: total over the days
	// the team actually worked, compared to the daily target.
	days := CountDistinctWorkingDays(dates)
	avg := 0.0
	if days > 0 {
		avg = float64(total) / float64(days)
	}

	target := float64(s.DailyTarget)
	reach := target * s.Threshold
	attained, rate := attainment(avg, target, reach)

	return Performance{
		Total:          total,
		Target:         target,
		ReachThreshold: reach,
		Attained:       attained,
		Rate:           rate,
		Gap:            Round2(avg - reach),
	}
}

// WeekStart normalizes t to the Monday of its week at midnight.
func WeekStart(t time.Time) time.Time {
	offset := int(t.Weekday()) - 1
	if offset < 0 {
		offset = 6 // Sunday
	}
	return time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, t.Location())
}

// groupByArchivist buckets entries by their literal archivist string in
// first-seen order. Insertion order is the deterministic tiebreak the
// ranking relies on; map iteration would not be.
func groupByArchivist(entries []dossier.Entry) ([]string, map[string][]dossier.Entry) {
	var order []string
	groups := make(map[string][]dossier.Entry)
	for _, e := range entries {
		if _, ok := groups[e.Archivist]; !ok {
			order = append(order, e.Archivist)
		}
		groups[e.Archivist] = append(groups[e.Archivist], e)
	}
	return order, groups
}

// ArchivistWeekly computes one weekly performance per archivist appearing in
// the week containing asOf. Names are taken literally from the entries, so
// archivists removed from the roster still show up under their stored name.
func ArchivistWeekly(entries []dossier.Entry, asOf time.Time, s dossier.Settings) []ArchivistPerformance {
	start := WeekStart(asOf)
	scoped := FilterScope(entries, start, start.AddDate(0, 0, 6), "")
	order, groups := groupByArchivist(scoped)

	target := float64(s.DailyTarget) * 5
	reach := target * s.Threshold

	results := make([]ArchivistPerformance, 0, len(order))
	for _, name := range order {
		group := groups[name]
		total := 0
		dates := make([]string, 0, len(group))
		for _, e := range group {
			total += e.Count
			dates = append(dates, e.Date)
		}
		days := CountDistinctWorkingDays(dates)
		avg := 0.0
		if days > 0 {
			avg = Round2(float64(total) / float64(days))
		}

		attained, rate := attainment(float64(total), target, reach)
		results = append(results, ArchivistPerformance{
			Name:           name,
			Total:          total,
			DaysWorked:     days,
			DailyAverage:   avg,
			Target:         target,
			ReachThreshold: reach,
			Attained:       attained,
			Rate:           rate,
			Gap:            float64(total) - reach,
		})
	}
	return results
}

// ArchivistAverages computes the daily-average performance per archivist
// over [from, to]. This is the shared engine behind the 30-day and annual
// views: the archivist's total is divided by their own count of distinct
// working days logged, and the attainment rule runs on that average against
// the plain daily target.
func ArchivistAverages(entries []dossier.Entry, from, to time.Time, s dossier.Settings) []ArchivistPerformance {
	scoped := FilterScope(entries, from, to, "")
	order, groups := groupByArchivist(scoped)

	target := float64(s.DailyTarget)
	reach := target * s.Threshold

	results := make([]ArchivistPerformance, 0, len(order))
	for _, name := range order {
		group := groups[name]
		total := 0
		dates := make([]string, 0, len(group))
		for _, e := range group {
			total += e.Count
			dates = append(dates, e.Date)
		}

		days := CountDistinctWorkingDays(dates)
		avg := 0.0
		if days > 0 {
			avg = float64(total) / float64(days)
		}

		attained, rate := attainment(avg, target, reach)
		if days == 0 {
			// No working day logged: a zero result, never a fault.
			attained, rate = false, 0
		}

		results = append(results, ArchivistPerformance{
			Name:           name,
			Total:          total,
			DaysWorked:     days,
			DailyAverage:   Round2(avg),
			Target:         target,
			ReachThreshold: reach,
			Attained:       attained,
			Rate:           rate,
			Gap:            Round2(avg - reach),
		})
	}
	return results
}

// Last30DaysAverages is the rolling-window ranking input: per-archivist
// daily averages over the 30 calendar days ending at asOf.
func Last30DaysAverages(entries []dossier.Entry, asOf time.Time, s dossier.Settings) []ArchivistPerformance {
	return ArchivistAverages(entries, asOf.AddDate(0, 0, -29), asOf, s)
}

// AnnualAverages computes the per-archivist daily averages over a calendar
// year and fills in the year-coverage figure: the share of the year's
// working days on which the archivist logged at least one entry, rounded to
// one decimal.
func AnnualAverages(entries []dossier.Entry, year int, s dossier.Settings) []ArchivistPerformance {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	results := ArchivistAverages(entries, from, to, s)

	yearDays := CountWorkingDaysInYear(year)
	for i := range results {
		if yearDays > 0 {
			results[i].YearCoverage = Round1(float64(results[i].DaysWorked) / float64(yearDays) * 100)
		}
	}
	return results
}
