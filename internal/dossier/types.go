// Package dossier holds the shared data model of the archive-processing
// dashboard: processing entries, the archivist roster, and the named
// configuration parameters the statistics engine reads.
package dossier

import (
	"time"
)

// DateLayout is the canonical on-disk date format. Dates are stored as plain
// strings so that range queries compare lexicographically.
const DateLayout = "2006-01-02"

// UnknownArchivist is the sentinel name that orphaned entries are reassigned
// to during a roster reset. It is created inactive and never ranked out of
// the aggregates: entries keep aggregating under the literal string.
const UnknownArchivist = "UNKNOWN ARCHIVIST"

// Entry is one row of logged work: dossiers processed by one archivist on
// one calendar date. The archivist name is denormalized on purpose; it is
// not a foreign key into the roster and may reference a deleted archivist.
type Entry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Archivist string    `json:"archivist"`
	Count     int       `json:"count"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Archivist is a roster member eligible to author entries. Names follow an
// uppercase convention enforced by the roster operations.
type Archivist struct {
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Parameter keys recognized by the configuration surface.
const (
	ParamInitialStock  = "initial_stock"
	ParamDailyTarget   = "daily_target"
	ParamThreshold     = "reach_threshold"
	ParamAdminPassword = "admin_password"
	ParamAppPassword   = "app_password"
)

// Settings is the configuration snapshot the statistics engine computes
// against. It is passed by value; the engine keeps no hidden state.
type Settings struct {
	InitialStock int     `json:"initial_stock"`
	DailyTarget  int     `json:"daily_target"`
	Threshold    float64 `json:"reach_threshold"` // fraction of target counted as reached
}

// DefaultSettings returns the documented fallbacks applied when a parameter
// is missing from the store.
func DefaultSettings() Settings {
	return Settings{
		InitialStock: 150000,
		DailyTarget:  200,
		Threshold:    0.9,
	}
}

// ParseDate parses a canonical YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders t in the canonical YYYY-MM-DD form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
