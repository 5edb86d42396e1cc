package stats

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"archistat/internal/dossier"
)

// FormatReport serializes an overview and a ranked per-archivist list into a
// semicolon-delimited text block suitable for spreadsheet import. It is a
// pure function of its arguments: no I/O, no clock reads.
//
// Field order, summary block (one "label;value" line each): analysis date,
// initial stock, archivist count, daily target, reach threshold in dossiers,
// processed total, remaining stock, percent processed, daily gap, then the
// daily, weekly and 30-day rates. A blank line separates the summary from
// the per-archivist table whose columns are: name, total processed, days
// worked, daily average, target, threshold, rate, status.
func FormatReport(asOf time.Time, s dossier.Settings, ov Overview, ranked []ArchivistPerformance) string {
	var b strings.Builder

	writeRow := func(cells ...string) {
		b.WriteString(strings.Join(cells, ";"))
		b.WriteByte('\n')
	}

	writeRow("Indicator", "Value")
	writeRow("Analysis date", dossier.FormatDate(asOf))
	writeRow("Initial stock", strconv.Itoa(ov.KPIs.InitialStock))
	writeRow("Archivists", strconv.Itoa(len(ranked)))
	writeRow("Daily target", strconv.Itoa(s.DailyTarget))
	writeRow("Reach threshold (dossiers)", formatNumber(float64(s.DailyTarget)*s.Threshold))
	writeRow("Processed total", strconv.Itoa(ov.KPIs.ProcessedTotal))
	writeRow("Remaining stock", strconv.Itoa(ov.KPIs.RemainingStock))
	writeRow("Percent processed", formatNumber(ov.KPIs.PercentProcessed))
	writeRow("Daily gap", formatNumber(ov.Daily.Gap))
	writeRow("Daily rate", formatNumber(ov.Daily.Rate))
	writeRow("Weekly rate", formatNumber(ov.Weekly.Rate))
	writeRow("30-day rate", formatNumber(ov.Last30Days.Rate))

	b.WriteByte('\n')
	writeRow("Archivist", "Total processed", "Days worked", "Daily average",
		"Target", "Threshold", "Rate", "Status")
	for _, p := range ranked {
		writeRow(
			p.Name,
			strconv.Itoa(p.Total),
			strconv.Itoa(p.DaysWorked),
			formatNumber(p.DailyAverage),
			formatNumber(p.Target),
			formatNumber(p.ReachThreshold),
			formatNumber(p.Rate),
			p.Status,
		)
	}

	return b.String()
}

// formatNumber renders a float without trailing zeros so that whole numbers
// import as integers.
func formatNumber(v float64) string {
	out := strconv.FormatFloat(v, 'f', -1, 64)
	if out == "-0" {
		out = "0"
	}
	return out
}

// ReportFilename suggests a dated export name.
func ReportFilename(asOf time.Time) string {
	return fmt.Sprintf("archistat_report_%s.csv", dossier.FormatDate(asOf))
}
