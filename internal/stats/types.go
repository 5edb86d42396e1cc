package stats

// GlobalKPIs summarizes the stock depletion across the full entry history.
type GlobalKPIs struct {
	InitialStock     int     `json:"initial_stock"`
	ProcessedTotal   int     `json:"processed_total"`
	RemainingStock   int     `json:"remaining_stock"`
	PercentProcessed float64 `json:"percent_processed"`
}

// Performance is the result of the threshold-attainment rule over one scope
// (a single day, a week, or a rolling window) for the whole team or one
// archivist.
type Performance struct {
	Total          int     `json:"total"`
	Target         float64 `json:"target"`
	ReachThreshold float64 `json:"reach_threshold"`
	Attained       bool    `json:"attained"`
	Rate           float64 `json:"rate"`
	Gap            float64 `json:"gap"` // signed: negative means short of the threshold
}

// ArchivistPerformance is the per-archivist variant used by the ranking
// views. For the 30-day and annual views the attainment rule is applied to
// the archivist's own daily average against the daily target; for the weekly
// view it is applied to the raw weekly total against a 5-day target.
type ArchivistPerformance struct {
	Name           string  `json:"name"`
	Total          int     `json:"total"`
	DaysWorked     int     `json:"days_worked"` // distinct working days with at least one entry
	DailyAverage   float64 `json:"daily_average"`
	Target         float64 `json:"target"`
	ReachThreshold float64 `json:"reach_threshold"`
	Attained       bool    `json:"attained"`
	Rate           float64 `json:"rate"`
	Gap            float64 `json:"gap"`
	Status         string  `json:"status,omitempty"`
	YearCoverage   float64 `json:"year_coverage,omitempty"` // annual view only
}

// Overview bundles the global KPIs with the team-wide period performances,
// as rendered on the dashboard landing page.
type Overview struct {
	KPIs       GlobalKPIs  `json:"kpis"`
	Daily      Performance `json:"daily"`
	Weekly     Performance `json:"weekly"`
	Last30Days Performance `json:"last_30_days"`
}

// ArchivistOverview is the single-archivist detail view: the same period
// scopes narrowed to one name.
type ArchivistOverview struct {
	Name       string      `json:"name"`
	Daily      Performance `json:"daily"`
	Weekly     Performance `json:"weekly"`
	Last30Days Performance `json:"last_30_days"`
}
