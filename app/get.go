package app

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/setstore/setstore/internal/daemon"
)

var (
	objectType string
	objectID   string
)

func init() { //nolint: gochecknoinits
	getCmd.Flags().StringVar(&objectType, "object-type", "", "Owning object type")
	getCmd.Flags().StringVar(&objectID, "object-id", "", "Owning object id")

	rootCmd.AddCommand(getCmd)
}

type settingOutput struct {
	Name       string   `json:"name"`
	ModuleID   string   `json:"moduleId"`
	ObjectType string   `json:"objectType"`
	ObjectID   string   `json:"objectId"`
	Values     []string `json:"values"`
	Stored     bool     `json:"stored"`
}

var getCmd = &cobra.Command{
	Use:    "get <name>...",
	Short:  "Read settings for one object",
	Args:   cobra.MinimumNArgs(1),
	PreRun: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		platform := daemon.New(&cfg)

		entries, err := platform.Manager.GetObjectSettings(cmd.Context(), args, objectType, objectID)
		if err != nil {
			return err
		}

		out := make([]settingOutput, 0, len(entries))
		for _, entry := range entries {
			out = append(out, settingOutput{
				Name:       entry.Descriptor.Name,
				ModuleID:   entry.Descriptor.ModuleID,
				ObjectType: entry.ObjectType,
				ObjectID:   entry.ObjectID,
				Values:     entry.EffectiveValues(),
				Stored:     entry.HasValues(),
			})
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(out)
	},
}
