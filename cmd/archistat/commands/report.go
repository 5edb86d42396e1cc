package commands

import (
	"fmt"
	"os"

	"archistat/internal/stats"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	reportDate string
	reportYear int
	reportOut  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the delimited performance report",
	Long: `Builds the spreadsheet-importable report: a summary block followed by the
ranked per-archivist performance table. By default the table covers the
rolling 30-day window; --year switches it to a calendar year with the extra
Moderate status band and year coverage.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		asOf, err := resolveDate(reportDate)
		if err != nil {
			return err
		}

		text, err := analyzer.Report(asOf, reportYear)
		if err != nil {
			return err
		}

		if reportOut == "" {
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		}

		if reportOut == "auto" {
			reportOut = stats.ReportFilename(asOf)
		}
		if err := os.WriteFile(reportOut, []byte(text), 0644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		log.Info().Str("path", reportOut).Msg("Report written")
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportDate, "date", "", "analysis date (YYYY-MM-DD, default today)")
	reportCmd.Flags().IntVar(&reportYear, "year", 0, "rank over a calendar year instead of the rolling 30-day window")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", `output file ("auto" for a dated name, default stdout)`)
	rootCmd.AddCommand(reportCmd)
}
