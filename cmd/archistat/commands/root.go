package commands

import (
	"context"

	"archistat/internal/config"
	"archistat/internal/logging"
	"archistat/internal/service"
	"archistat/internal/stats"
	"archistat/internal/store"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig

	db       *store.Store
	svc      *service.Service
	analyzer *stats.Analyzer
)

var rootCmd = &cobra.Command{
	Use:   "archistat",
	Short: "Archistat tracks dossier processing against a stock-depletion target",
	Long: `Archistat is the reporting backend of the physical-dossier processing dashboard:
it logs daily entries per archivist and computes KPIs, period performance and
rankings against a configurable goal-attainment threshold.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		db, err = store.Open(cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("Failed to open record store")
		}
		if err := db.SeedDefaults(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed default parameters")
		}

		svc = service.New(db)
		analyzer = stats.NewAnalyzer(db)

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Str("db", cfg.DBPath).
			Msg("Archistat starting")
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			_ = db.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
