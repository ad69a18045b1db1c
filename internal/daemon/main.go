// Package daemon bootstraps the settings platform: database, schema,
// descriptor registry and manager.
package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/setstore/setstore/internal/config"
	"github.com/setstore/setstore/internal/db"
	"github.com/setstore/setstore/internal/db/models"
	"github.com/setstore/setstore/internal/settings"
)

// Platform holds the wired settings components.
type Platform struct {
	DB       *gorm.DB
	Registry *settings.Registry
	Manager  *settings.Manager
}

// New creates a Platform instance with the provided configuration.
func New(cfg *config.Config) *Platform {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("failed to connect database")
		return nil
	}

	if err = gdb.AutoMigrate(&models.ObjectSetting{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
		return nil
	}

	registry := settings.NewRegistry()
	seed(registry)

	manager, err := settings.NewManager(gdb, registry)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create settings manager")
		return nil
	}

	return &Platform{
		DB:       gdb,
		Registry: registry,
		Manager:  manager,
	}
}
