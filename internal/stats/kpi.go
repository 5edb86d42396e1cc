package stats

import (
	"archistat/internal/dossier"
)

// ComputeGlobalKPIs folds the full entry history into the stock-depletion
// indicators. No date filter is applied: the stock depletes against
// everything ever logged.
func ComputeGlobalKPIs(entries []dossier.Entry, s dossier.Settings) GlobalKPIs {
	total := 0
	for _, e := range entries {
		total += e.Count
	}

	remaining := s.InitialStock - total
	if remaining < 0 {
		remaining = 0
	}

	percent := 0.0
	if s.InitialStock > 0 {
		percent = Round2(float64(total) / float64(s.InitialStock) * 100)
	}

	return GlobalKPIs{
		InitialStock:     s.InitialStock,
		ProcessedTotal:   total,
		RemainingStock:   remaining,
		PercentProcessed: percent,
	}
}
