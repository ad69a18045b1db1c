package daemon

import (
	"github.com/rs/zerolog/log"

	"github.com/setstore/setstore/internal/settings"
)

// seed registers the platform's built-in descriptors. Application modules
// register their own descriptors on top of these during their startup.
func seed(registry *settings.Registry) {
	core := []*settings.Descriptor{
		{
			Name:         "Platform.UI.Theme",
			ValueType:    settings.TypeShortText,
			DefaultValue: "light",
			AllowedValues: []string{
				"light",
				"dark",
			},
		},
		{
			Name:         "Platform.UI.Language",
			ValueType:    settings.TypeShortText,
			DefaultValue: "en",
		},
		{
			Name:         "Platform.Search.PageSize",
			ValueType:    settings.TypeInteger,
			DefaultValue: "20",
		},
		{
			Name:      "Platform.Export.Enabled",
			ValueType: settings.TypeBoolean,
		},
	}

	if err := registry.RegisterSettings(core, "platform"); err != nil {
		log.Error().Err(err).Msg("failed to register built-in descriptors")
	}
}
