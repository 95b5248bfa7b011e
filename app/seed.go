package app

import (
	"github.com/spf13/cobra"

	"github.com/marogo-civils/marogo-web/internal/config"
	"github.com/marogo-civils/marogo-web/internal/daemon"
	"github.com/marogo-civils/marogo-web/internal/logger"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the admin account and fill empty content tables with sample data",
	Long: `seed migrates the database, creates the admin account if none exists
and inserts sample content into every empty content table so a fresh
install renders a complete site. Tables that already hold rows are
left untouched.`,
	PreRun: func(_ *cobra.Command, _ []string) {
		if cfg, err = config.ReadConfig(configPath); err != nil {
			panic(err)
		}

		if err = logger.Init(cfg.Log); err != nil {
			panic(err)
		}
	},
	Run: func(_ *cobra.Command, _ []string) {
		daemon.Seed(&cfg)
	},
}
