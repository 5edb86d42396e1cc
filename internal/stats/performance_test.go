package stats

import (
	"testing"
	"time"

	"archistat/internal/dossier"
)

var testSettings = dossier.Settings{InitialStock: 150000, DailyTarget: 200, Threshold: 0.9}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dossier.ParseDate(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestDailyPerformance_ThresholdRule(t *testing.T) {
	day := "2025-01-06" // Monday

	tests := []struct {
		name         string
		count        int
		wantAttained bool
		wantRate     float64
		wantGap      float64
	}{
		{"BelowThreshold", 150, false, 75.0, -30},
		{"AboveTarget", 220, true, 110.0, 40},
		{"ExactlyAtThreshold", 180, true, 90.0, 0},
		{"ExactlyAtTarget", 200, true, 100.0, 20},
		{"Zero", 0, false, 0, -180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := []dossier.Entry{{ID: "e1", Date: day, Archivist: "DUPONT", Count: tt.count}}
			p := DailyPerformance(entries, mustDate(t, day), testSettings)

			if p.Target != 200 || p.ReachThreshold != 180 {
				t.Fatalf("target/threshold = %v/%v, want 200/180", p.Target, p.ReachThreshold)
			}
			if p.Attained != tt.wantAttained {
				t.Errorf("Attained = %v, want %v", p.Attained, tt.wantAttained)
			}
			if p.Rate != tt.wantRate {
				t.Errorf("Rate = %v, want %v", p.Rate, tt.wantRate)
			}
			if p.Gap != tt.wantGap {
				t.Errorf("Gap = %v, want %v", p.Gap, tt.wantGap)
			}
		})
	}
}

func TestDailyPerformance_NoEntriesInScope(t *testing.T) {
	entries := []dossier.Entry{{ID: "e1", Date: "2025-01-07", Archivist: "DUPONT", Count: 500}}
	p := DailyPerformance(entries, mustDate(t, "2025-01-06"), testSettings)

	if p.Total != 0 || p.Attained || p.Rate != 0 {
		t.Errorf("expected zero result, got %+v", p)
	}
	if p.Gap != -180 {
		t.Errorf("Gap = %v, want -180", p.Gap)
	}
}

func TestDailyPerformance_ZeroTargetGuard(t *testing.T) {
	entries := []dossier.Entry{{ID: "e1", Date: "2025-01-06", Archivist: "DUPONT", Count: 100}}
	p := DailyPerformance(entries, mustDate(t, "2025-01-06"), dossier.Settings{DailyTarget: 0, Threshold: 0.9})

	if p.Rate != 0 {
		t.Errorf("Rate = %v, want 0 with a zero target", p.Rate)
	}
}

func TestFilterScope_MalformedDatesSkipped(t *testing.T) {
	entries := []dossier.Entry{
		{ID: "e1", Date: "2025-01-06", Archivist: "DUPONT", Count: 100},
		{ID: "e2", Date: "garbage", Archivist: "DUPONT", Count: 999},
	}

	scoped := FilterScope(entries, mustDate(t, "2025-01-01"), mustDate(t, "2025-01-31"), "")
	if len(scoped) != 1 || scoped[0].ID != "e1" {
		t.Errorf("malformed date must be skipped, got %+v", scoped)
	}
}

func TestFilterScope_ArchivistFilter(t *testing.T) {
	entries := []dossier.Entry{
		{ID: "e1", Date: "2025-01-06", Archivist: "DUPONT", Count: 100},
		{ID: "e2", Date: "2025-01-06", Archivist: "MARTIN", Count: 100},
	}

	scoped := FilterScope(entries, time.Time{}, time.Time{}, "MARTIN")
	if len(scoped) != 1 || scoped[0].ID != "e2" {
		t.Errorf("archivist filter mismatch: %+v", scoped)
	}
}

func TestWeeklyPerformance(t *testing.T) {
	// Week of Monday 2025-01-06: 5 working days, target 1000, reach 900.
	entries := []dossier.Entry{
		{ID: "e1", Date: "2025-01-06", Archivist: "DUPONT", Count: 210},
		{ID: "e2", Date: "2025-01-07", Archivist: "MARTIN", Count: 200},
		{ID: "e3", Date: "2025-01-08", Archivist: "DUPONT", Count: 190},
		{ID: "e4", Date: "2025-01-09", Archivist: "MARTIN", Count: 200},
		{ID: "e5", Date: "2025-01-10", Archivist: "DUPONT", Count: 200},
		{ID: "e6", Date: "2025-01-13", Archivist: "DUPONT", Count: 500}, // next week
	}

	// Thursday of the same week must resolve to the same Monday anchor.
	p := WeeklyPerformance(entries, mustDate(t, "2025-01-09"), testSettings)

	if p.Total != 1000 {
		t.Errorf("Total = %d, want 1000", p.Total)
	}
	if p.Target != 1000 || p.ReachThreshold != 900 {
		t.Errorf("target/threshold = %v/%v, want 1000/900", p.Target, p.ReachThreshold)
	}
	if !p.Attained || p.Rate != 100.0 {
		t.Errorf("Attained/Rate = %v/%v, want true/100", p.Attained, p.Rate)
	}
}

func TestArchivistAverages_DuplicateDatesCountOnce(t *testing.T) {
	// Two entries on the same Monday: counts sum, the day counts once.
	entries := []dossier.Entry{
		{ID: "e1", Date: "2025-01-06", Archivist: "DUPONT", Count: 50},
		{ID: "e2", Date: "2025-01-06", Archivist: "DUPONT", Count: 30},
	}

	results := ArchivistAverages(entries, mustDate(t, "2025-01-01"), mustDate(t, "2025-01-31"), testSettings)
	if len(results) != 1 {
		t.Fatalf("expected 1 archivist, got %d", len(results))
	}

	r := results[0]
	if r.Total != 80 {
		t.Errorf("Total = %d, want 80", r.Total)
	}
	if r.DaysWorked != 1 {
		t.Errorf("DaysWorked = %d, want 1", r.DaysWorked)
	}
	if r.DailyAverage != 80.0 {
		t.Errorf("DailyAverage = %v, want 80", r.DailyAverage)
	}
	// 80/180*90 = 40.0 on the below-threshold scale.
	if r.Attained || r.Rate != 40.0 {
		t.Errorf("Attained/Rate = %v/%v, want false/40", r.Attained, r.Rate)
	}
}

func TestArchivistAverages_OrphanNamesAggregateLiterally(t *testing.T) {
	// "LEGACY NAME" is not in any roster; it still aggregates by its
	// literal string value.
	entries := []dossier.Entry{
		{ID: "e1", Date: "2025-01-06", Archivist: "LEGACY NAME", Count: 200},
		{ID: "e2", Date: "2025-01-07", Archivist: "LEGACY NAME", Count: 200},
	}

	results := ArchivistAverages(entries, time.Time{}, time.Time{}, testSettings)
	if len(results) != 1 || results[0].Name != "LEGACY NAME" {
		t.Fatalf("expected literal aggregation, got %+v", results)
	}
	if results[0].DailyAverage != 200.0 || !results[0].Attained || results[0].Rate != 100.0 {
		t.Errorf("unexpected result: %+v", results[0])
	}
}

func TestArchivistAverages_WeekendOnlyWorkerZeroGuard(t *testing.T) {
	// Entries exist but none on a working day: zero days worked must yield
	// a zero rate, not a division fault.
	entries := []dossier.Entry{
		{ID: "e1", Date: "2025-01-11", Archivist: "DUPONT", Count: 400}, // Saturday
	}

	results := ArchivistAverages(entries, time.Time{}, time.Time{}, testSettings)
	if len(results) != 1 {
		t.Fatalf("expected 1 archivist, got %d", len(results))
	}
	r := results[0]
	if r.DaysWorked != 0 || r.Rate != 0 || r.Attained {
		t.Errorf("expected zero-guard result, got %+v", r)
	}
	if r.Total != 400 {
		t.Errorf("Total = %d, want 400 (weekend counts still sum)", r.Total)
	}
}

func TestAnnualAverages_YearCoverage(t *testing.T) {
	// One entry on every working day of 2025 (261 of them).
	var entries []dossier.Entry
	day := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day.Year() == 2025 {
		if IsWorkingDay(day) {
			entries = append(entries, dossier.Entry{
				Date:      dossier.FormatDate(day),
				Archivist: "DUPONT",
				Count:     200,
			})
		}
		day = day.AddDate(0, 0, 1)
	}

	results := AnnualAverages(entries, 2025, testSettings)
	if len(results) != 1 {
		t.Fatalf("expected 1 archivist, got %d", len(results))
	}

	r := results[0]
	if r.DaysWorked != 261 {
		t.Errorf("DaysWorked = %d, want 261", r.DaysWorked)
	}
	if r.YearCoverage != 100.0 {
		t.Errorf("YearCoverage = %v, want 100", r.YearCoverage)
	}
	if !r.Attained || r.Rate != 100.0 {
		t.Errorf("Attained/Rate = %v/%v, want true/100", r.Attained, r.Rate)
	}
}

func TestLast30DaysPerformance(t *testing.T) {
	asOf := mustDate(t, "2025-01-31")
	entries := []dossier.Entry{
		{ID: "e1", Date: "2025-01-30", Archivist: "DUPONT", Count: 180}, // Thursday
		{ID: "e2", Date: "2025-01-31", Archivist: "DUPONT", Count: 180}, // Friday
		{ID: "e3", Date: "2024-12-01", Archivist: "DUPONT", Count: 999}, // outside window
	}

	p := Last30DaysPerformance(entries, asOf, testSettings)
	if p.Total != 360 {
		t.Errorf("Total = %d, want 360", p.Total)
	}
	// Average 180/day is exactly the threshold: attained at rate 90.
	if !p.Attained || p.Rate != 90.0 {
		t.Errorf("Attained/Rate = %v/%v, want true/90", p.Attained, p.Rate)
	}
	if p.Gap != 0 {
		t.Errorf("Gap = %v, want 0", p.Gap)
	}
}
