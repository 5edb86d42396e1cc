package stats

import (
	"fmt"
	"strconv"
	"time"

	"archistat/internal/dossier"

	"github.com/rs/zerolog/log"
)

// Source is the read surface the engine consumes. The statistics code never
// mutates the store; all writes happen in the data-entry layer.
//
// FetchEntries bounds are canonical YYYY-MM-DD strings; an empty bound is
// open and an empty archivist means all. GetParameter returns an empty
// string for an unset key; the engine substitutes documented defaults.
type Source interface {
	FetchEntries(from, to, archivist string) ([]dossier.Entry, error)
	GetParameter(key string) (string, error)
}

// Analyzer binds the pure statistics functions to a record store. Every
// method fetches a fresh read snapshot; nothing is cached across calls, so
// a store failure surfaces on the call that hit it.
type Analyzer struct {
	src Source
}

// NewAnalyzer creates an Analyzer over the given source.
func NewAnalyzer(src Source) *Analyzer {
	return &Analyzer{src: src}
}

// Settings reads the configuration snapshot, falling back to the documented
// defaults for any parameter that is unset or unreadable.
func (a *Analyzer) Settings() (dossier.Settings, error) {
	s := dossier.DefaultSettings()

	if v, err := a.param(dossier.ParamInitialStock); err != nil {
		return s, err
	} else if v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.InitialStock = n
		} else {
			log.Warn().Str("key", dossier.ParamInitialStock).Str("value", v).Msg("Unreadable parameter, using default")
		}
	}

	if v, err := a.param(dossier.ParamDailyTarget); err != nil {
		return s, err
	} else if v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.DailyTarget = n
		} else {
			log.Warn().Str("key", dossier.ParamDailyTarget).Str("value", v).Msg("Unreadable parameter, using default")
		}
	}

	if v, err := a.param(dossier.ParamThreshold); err != nil {
		return s, err
	} else if v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			s.Threshold = f
		} else {
			log.Warn().Str("key", dossier.ParamThreshold).Str("value", v).Msg("Unreadable parameter, using default")
		}
	}

	return s, nil
}

func (a *Analyzer) param(key string) (string, error) {
	v, err := a.src.GetParameter(key)
	if err != nil {
		return "", fmt.Errorf("reading parameter %s: %w", key, err)
	}
	return v, nil
}

// snapshot fetches the full entry history plus the settings in one go.
// Global KPIs need every entry anyway, and computing all period views from
// the same snapshot keeps them mutually consistent.
func (a *Analyzer) snapshot() ([]dossier.Entry, dossier.Settings, error) {
	s, err := a.Settings()
	if err != nil {
		return nil, s, err
	}
	entries, err := a.src.FetchEntries("", "", "")
	if err != nil {
		return nil, s, fmt.Errorf("fetching entries: %w", err)
	}
	return entries, s, nil
}

// Overview computes the dashboard landing block: global KPIs plus the
// daily, weekly and 30-day team performances as of the given date.
func (a *Analyzer) Overview(asOf time.Time) (Overview, error) {
	entries, s, err := a.snapshot()
	if err != nil {
		return Overview{}, err
	}
	return Overview{
		KPIs:       ComputeGlobalKPIs(entries, s),
		Daily:      DailyPerformance(entries, asOf, s),
		Weekly:     WeeklyPerformance(entries, asOf, s),
		Last30Days: Last30DaysPerformance(entries, asOf, s),
	}, nil
}

// ArchivistOverview computes the period performances for a single
// archivist, matched by exact stored name. The name does not have to be on
// the roster; orphaned names resolve to their literal entries.
func (a *Analyzer) ArchivistOverview(asOf time.Time, name string) (ArchivistOverview, error) {
	s, err := a.Settings()
	if err != nil {
		return ArchivistOverview{}, err
	}
	entries, err := a.src.FetchEntries("", "", name)
	if err != nil {
		return ArchivistOverview{}, fmt.Errorf("fetching entries: %w", err)
	}
	return ArchivistOverview{
		Name:       name,
		Daily:      DailyPerformance(entries, asOf, s),
		Weekly:     WeeklyPerformance(entries, asOf, s),
		Last30Days: Last30DaysPerformance(entries, asOf, s),
	}, nil
}

// WeeklyRanking returns the ranked per-archivist weekly performances for
// the week containing asOf.
func (a *Analyzer) WeeklyRanking(asOf time.Time) ([]ArchivistPerformance, error) {
	entries, s, err := a.snapshot()
	if err != nil {
		return nil, err
	}
	return Rank(ArchivistWeekly(entries, asOf, s), false), nil
}

// Rolling30Ranking returns the ranked per-archivist daily averages over the
// 30 days ending at asOf.
func (a *Analyzer) Rolling30Ranking(asOf time.Time) ([]ArchivistPerformance, error) {
	entries, s, err := a.snapshot()
	if err != nil {
		return nil, err
	}
	return Rank(Last30DaysAverages(entries, asOf, s), false), nil
}

// AnnualRanking returns the ranked per-archivist daily averages and year
// coverage for a calendar year.
func (a *Analyzer) AnnualRanking(year int) ([]ArchivistPerformance, error) {
	entries, s, err := a.snapshot()
	if err != nil {
		return nil, err
	}
	return Rank(AnnualAverages(entries, year, s), true), nil
}

// Report builds the delimited export as of the given date. With year == 0
// the per-archivist table covers the rolling 30-day window, otherwise the
// given calendar year.
func (a *Analyzer) Report(asOf time.Time, year int) (string, error) {
	entries, s, err := a.snapshot()
	if err != nil {
		return "", err
	}

	ov := Overview{
		KPIs:       ComputeGlobalKPIs(entries, s),
		Daily:      DailyPerformance(entries, asOf, s),
		Weekly:     WeeklyPerformance(entries, asOf, s),
		Last30Days: Last30DaysPerformance(entries, asOf, s),
	}

	var ranked []ArchivistPerformance
	if year == 0 {
		ranked = Rank(Last30DaysAverages(entries, asOf, s), false)
	} else {
		ranked = Rank(AnnualAverages(entries, year, s), true)
	}

	return FormatReport(asOf, s, ov, ranked), nil
}
