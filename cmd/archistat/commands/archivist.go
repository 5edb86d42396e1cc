package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var archivistCmd = &cobra.Command{
	Use:   "archivist",
	Short: "Manage the archivist roster",
}

var archivistAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a roster member (names are uppercased)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := svc.AddArchivist(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", a.Name)
		return nil
	},
}

var archivistDeactivateCmd = &cobra.Command{
	Use:   "deactivate NAME",
	Short: "Soft-remove a member from the selectable roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return svc.DeactivateArchivist(cmd.Context(), args[0])
	},
}

var archivistDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Hard-delete a member (their entries are kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return svc.DeleteArchivist(cmd.Context(), args[0])
	},
}

var archivistListActive bool

var archivistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		roster, err := svc.ListRoster(cmd.Context(), archivistListActive)
		if err != nil {
			return err
		}
		for _, a := range roster {
			state := "active"
			if !a.Active {
				state = "inactive"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", a.Name, state)
		}
		return nil
	},
}

var archivistResetCmd = &cobra.Command{
	Use:   "reset NAME...",
	Short: "Replace the roster; orphaned entries go to the sentinel",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return svc.ResetRoster(cmd.Context(), args)
	},
}

func init() {
	archivistListCmd.Flags().BoolVar(&archivistListActive, "active", false, "only active members")
	archivistCmd.AddCommand(archivistAddCmd, archivistDeactivateCmd, archivistDeleteCmd, archivistListCmd, archivistResetCmd)
	rootCmd.AddCommand(archivistCmd)
}
