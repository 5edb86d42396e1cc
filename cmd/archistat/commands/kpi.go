package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"archistat/internal/dossier"

	"github.com/spf13/cobra"
)

var (
	kpiDate      string
	kpiArchivist string
)

var kpiCmd = &cobra.Command{
	Use:   "kpi",
	Short: "Print the global KPIs and period performances as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		asOf, err := resolveDate(kpiDate)
		if err != nil {
			return err
		}

		var result any
		if kpiArchivist != "" {
			result, err = analyzer.ArchivistOverview(asOf, kpiArchivist)
		} else {
			result, err = analyzer.Overview(asOf)
		}
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

// resolveDate parses a YYYY-MM-DD flag value, defaulting to today.
func resolveDate(flag string) (time.Time, error) {
	if flag == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := dossier.ParseDate(flag)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", flag)
	}
	return d, nil
}

func init() {
	kpiCmd.Flags().StringVar(&kpiDate, "date", "", "analysis date (YYYY-MM-DD, default today)")
	kpiCmd.Flags().StringVar(&kpiArchivist, "archivist", "", "narrow the period scopes to one archivist")
	rootCmd.AddCommand(kpiCmd)
}
