package app

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/setstore/setstore/internal/daemon"
	"github.com/setstore/setstore/internal/settings"
)

var (
	rmObjectType string
	rmObjectID   string
)

func init() { //nolint: gochecknoinits
	rmCmd.Flags().StringVar(&rmObjectType, "object-type", "", "Owning object type")
	rmCmd.Flags().StringVar(&rmObjectID, "object-id", "", "Owning object id")

	rootCmd.AddCommand(rmCmd)
}

var rmCmd = &cobra.Command{
	Use:    "rm <name>...",
	Short:  "Remove stored setting values for one object",
	Args:   cobra.MinimumNArgs(1),
	PreRun: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		platform := daemon.New(&cfg)

		entries := make([]*settings.ObjectSettingEntry, 0, len(args))

		for _, name := range args {
			descriptor, ok := platform.Registry.Lookup(name)
			if !ok {
				return errors.Errorf("setting %q is not registered", name)
			}

			entries = append(entries, &settings.ObjectSettingEntry{
				Descriptor: descriptor,
				ObjectType: rmObjectType,
				ObjectID:   rmObjectID,
			})
		}

		if err := platform.Manager.RemoveObjectSettings(cmd.Context(), entries); err != nil {
			return err
		}

		log.Info().
			Int("count", len(entries)).
			Str("objectType", rmObjectType).
			Str("objectId", rmObjectID).
			Msg("settings removed")

		return nil
	},
}
