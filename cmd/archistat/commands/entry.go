package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Log, edit and delete processing entries",
}

var (
	entryAddDate      string
	entryAddArchivist string
	entryAddCount     int
	entryAddComment   string
)

var entryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log dossiers processed by one archivist on one date",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := svc.CreateEntry(cmd.Context(), entryAddDate, entryAddArchivist, entryAddCount, entryAddComment)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created entry %s: %s %s %d\n", e.ID, e.Date, e.Archivist, e.Count)
		return nil
	},
}

var (
	rangeFrom      string
	rangeTo        string
	rangeArchivist string
	rangeTotal     int
	rangeComment   string
)

var entryAddRangeCmd = &cobra.Command{
	Use:   "add-range",
	Short: "Distribute a total across the working days of a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := svc.CreateRangeEntries(cmd.Context(), rangeFrom, rangeTo, rangeArchivist, rangeTotal, rangeComment)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %d entries from %s to %s\n", len(entries), rangeFrom, rangeTo)
		return nil
	},
}

var (
	deleteID        string
	deleteDate      string
	deleteArchivist string
)

var entryDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete entries by id, exact date, or archivist name",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case deleteID != "":
			if err := svc.DeleteEntry(cmd.Context(), deleteID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted 1 entry")
		case deleteDate != "":
			n, err := svc.DeleteEntriesByDate(cmd.Context(), deleteDate)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d entries\n", n)
		case deleteArchivist != "":
			n, err := svc.DeleteEntriesByArchivist(cmd.Context(), deleteArchivist)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d entries\n", n)
		default:
			return fmt.Errorf("one of --id, --date or --archivist is required")
		}
		return nil
	},
}

func init() {
	entryAddCmd.Flags().StringVar(&entryAddDate, "date", "", "entry date (YYYY-MM-DD)")
	entryAddCmd.Flags().StringVar(&entryAddArchivist, "archivist", "", "archivist name")
	entryAddCmd.Flags().IntVar(&entryAddCount, "count", 0, "dossiers processed")
	entryAddCmd.Flags().StringVar(&entryAddComment, "comment", "", "optional comment")
	_ = entryAddCmd.MarkFlagRequired("date")
	_ = entryAddCmd.MarkFlagRequired("archivist")
	_ = entryAddCmd.MarkFlagRequired("count")

	entryAddRangeCmd.Flags().StringVar(&rangeFrom, "from", "", "range start (YYYY-MM-DD)")
	entryAddRangeCmd.Flags().StringVar(&rangeTo, "to", "", "range end (YYYY-MM-DD)")
	entryAddRangeCmd.Flags().StringVar(&rangeArchivist, "archivist", "", "archivist name")
	entryAddRangeCmd.Flags().IntVar(&rangeTotal, "total", 0, "total dossiers to distribute")
	entryAddRangeCmd.Flags().StringVar(&rangeComment, "comment", "", "optional comment")
	_ = entryAddRangeCmd.MarkFlagRequired("from")
	_ = entryAddRangeCmd.MarkFlagRequired("to")
	_ = entryAddRangeCmd.MarkFlagRequired("archivist")
	_ = entryAddRangeCmd.MarkFlagRequired("total")

	entryDeleteCmd.Flags().StringVar(&deleteID, "id", "", "entry identifier")
	entryDeleteCmd.Flags().StringVar(&deleteDate, "date", "", "delete all entries on this date")
	entryDeleteCmd.Flags().StringVar(&deleteArchivist, "archivist", "", "delete all entries under this name")

	entryCmd.AddCommand(entryAddCmd, entryAddRangeCmd, entryDeleteCmd)
	rootCmd.AddCommand(entryCmd)
}
