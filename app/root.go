// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/setstore/setstore/internal/config"
	"github.com/setstore/setstore/internal/logger"
)

var (
	configPath string // Path to the configuration file

	cfg config.Config
	err error

	rootCmd = &cobra.Command{
		Use:   "setstore",
		Short: "setstore is an object-scoped settings store for modular applications",
		Long: `setstore manages per-object setting values for a modular application
platform. Modules declare setting descriptors at startup; values are stored
per (object type, object id) in a relational database behind a tag-invalidated
cache.`,
		Args: cobra.OnlyValidArgs,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration directory")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup reads the configuration and initializes the logger. Used as PreRun
// by every command that touches the store.
func setup(_ *cobra.Command, _ []string) {
	if cfg, err = config.ReadConfig(configPath); err != nil {
		panic(err)
	}

	if err = logger.Init(cfg.Log); err != nil {
		panic(err)
	}
}
