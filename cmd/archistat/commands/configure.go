package commands

import (
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Update the stored domain parameters",
}

var setStockCmd = &cobra.Command{
	Use:   "set-stock N",
	Short: "Set the initial stock of dossiers to clear (strictly positive)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		return svc.SetInitialStock(cmd.Context(), n)
	},
}

var setTargetCmd = &cobra.Command{
	Use:   "set-target N",
	Short: "Set the daily dossier target (strictly positive)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		return svc.SetDailyTarget(cmd.Context(), n)
	},
}

var setThresholdCmd = &cobra.Command{
	Use:   "set-threshold F",
	Short: "Set the attainment threshold fraction (clamped to [0.5, 1.0])",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return err
		}
		return svc.SetThreshold(cmd.Context(), f)
	},
}

var setAdminPasswordCmd = &cobra.Command{
	Use:   "set-admin-password PASSWORD",
	Short: "Set the administration password (minimum 3 characters)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return svc.SetAdminPassword(cmd.Context(), args[0])
	},
}

var setAppPasswordCmd = &cobra.Command{
	Use:   "set-app-password PASSWORD",
	Short: "Set the application-access password (minimum 3 characters)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return svc.SetAppPassword(cmd.Context(), args[0])
	},
}

func init() {
	configCmd.AddCommand(setStockCmd, setTargetCmd, setThresholdCmd, setAdminPasswordCmd, setAppPasswordCmd)
	rootCmd.AddCommand(configCmd)
}
