package stats

import (
	"testing"

	"archistat/internal/dossier"
)

func TestComputeGlobalKPIs(t *testing.T) {
	settings := dossier.Settings{InitialStock: 150000, DailyTarget: 200, Threshold: 0.9}

	tests := []struct {
		name          string
		counts        []int
		settings      dossier.Settings
		wantTotal     int
		wantRemaining int
		wantPercent   float64
	}{
		{"NoEntries", nil, settings, 0, 150000, 0},
		{"Simple", []int{100, 250}, settings, 350, 149650, 0.23},
		{"ExactDepletion", []int{150000}, settings, 150000, 0, 100},
		{"OverProcessedClampsToZero", []int{200000}, settings, 200000, 0, 133.33},
		{"ZeroStockNoDivision", []int{500}, dossier.Settings{InitialStock: 0}, 500, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []dossier.Entry
			for i, c := range tt.counts {
				entries = append(entries, dossier.Entry{
					ID:        string(rune('a' + i)),
					Date:      "2025-01-06",
					Archivist: "DUPONT",
					Count:     c,
				})
			}

			kpi := ComputeGlobalKPIs(entries, tt.settings)
			if kpi.ProcessedTotal != tt.wantTotal {
				t.Errorf("ProcessedTotal = %d, want %d", kpi.ProcessedTotal, tt.wantTotal)
			}
			if kpi.RemainingStock != tt.wantRemaining {
				t.Errorf("RemainingStock = %d, want %d", kpi.RemainingStock, tt.wantRemaining)
			}
			if kpi.PercentProcessed != tt.wantPercent {
				t.Errorf("PercentProcessed = %v, want %v", kpi.PercentProcessed, tt.wantPercent)
			}
			if kpi.RemainingStock < 0 {
				t.Error("RemainingStock must never be negative")
			}
		})
	}
}
