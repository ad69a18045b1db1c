// Package db opens the gorm connection for the configured driver.
package db

import (
	"github.com/glebarez/sqlite"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/setstore/setstore/internal/config"
	"github.com/setstore/setstore/internal/db/dsn"
)

// Open connects to the database selected by cfg.DB.Driver.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DB.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DB.Path)
	case config.DriverMySQL:
		dialector = gormmysql.Open(dsn.CreateMySQL(cfg))
	case config.DriverPostgres:
		dialector = gormpostgres.Open(dsn.CreatePostgres(cfg))
	default:
		return nil, config.ErrUnknownDBDriver
	}

	return gorm.Open(dialector, &gorm.Config{})
}
