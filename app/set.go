package app

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/setstore/setstore/internal/daemon"
	"github.com/setstore/setstore/internal/settings"
)

var (
	setObjectType string
	setObjectID   string
)

func init() { //nolint: gochecknoinits
	setCmd.Flags().StringVar(&setObjectType, "object-type", "", "Owning object type")
	setCmd.Flags().StringVar(&setObjectID, "object-id", "", "Owning object id")

	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:    "set <name> <value>...",
	Short:  "Store setting values for one object",
	Args:   cobra.MinimumNArgs(2),
	PreRun: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		platform := daemon.New(&cfg)

		name := args[0]

		descriptor, ok := platform.Registry.Lookup(name)
		if !ok {
			return errors.Errorf("setting %q is not registered", name)
		}

		entry := &settings.ObjectSettingEntry{
			Descriptor: descriptor,
			ObjectType: setObjectType,
			ObjectID:   setObjectID,
			Values:     args[1:],
		}

		if err := platform.Manager.SaveObjectSettings(cmd.Context(), []*settings.ObjectSettingEntry{entry}); err != nil {
			return err
		}

		log.Info().
			Str("name", descriptor.Name).
			Str("objectType", setObjectType).
			Str("objectId", setObjectID).
			Msg("setting saved")

		return nil
	},
}
