package stats

import "sort"

// Status tiers assigned from the performance rate.
const (
	StatusExcellent    = "Excellent"
	StatusCorrect      = "Correct"
	StatusModerate     = "Moderate" // annual view only
	StatusInsufficient = "Insufficient"
)

// ClassifyStatus maps a rate to its tier for the weekly and 30-day views.
func ClassifyStatus(rate float64) string {
	switch {
	case rate >= 100:
		return StatusExcellent
	case rate >= 80:
		return StatusCorrect
	default:
		return StatusInsufficient
	}
}

// ClassifyAnnualStatus maps a rate to its tier for the annual view, which
// carries an extra Moderate band between 60 and 80.
func ClassifyAnnualStatus(rate float64) string {
	switch {
	case rate >= 100:
		return StatusExcellent
	case rate >= 80:
		return StatusCorrect
	case rate >= 60:
		return StatusModerate
	default:
		return StatusInsufficient
	}
}

// Rank sorts the results descending by rate and stamps each with its status
// tier. The sort is stable: ties keep their insertion order, which the
// grouping already made deterministic.
func Rank(results []ArchivistPerformance, annual bool) []ArchivistPerformance {
	ranked := make([]ArchivistPerformance, len(results))
	copy(ranked, results)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rate > ranked[j].Rate
	})

	for i := range ranked {
		if annual {
			ranked[i].Status = ClassifyAnnualStatus(ranked[i].Rate)
		} else {
			ranked[i].Status = ClassifyStatus(ranked[i].Rate)
		}
	}
	return ranked
}
