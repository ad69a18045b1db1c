package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/setstore/setstore/internal/daemon"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:    "migrate",
	Short:  "Create or update the object settings schema",
	PreRun: setup,
	RunE: func(_ *cobra.Command, _ []string) error {
		// daemon.New runs AutoMigrate as part of the bootstrap.
		daemon.New(&cfg)
		log.Info().Msg("schema is up to date")

		return nil
	},
}
