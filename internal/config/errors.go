package config

import (
	"errors"
)

var (
	// ErrUnknownDBDriver error if config db.driver is not one of sqlite, mysql, postgres.
	ErrUnknownDBDriver = errors.New("toml config db.driver must be sqlite, mysql or postgres")

	// ErrDBPathEmpty error if the sqlite driver is selected without db.path.
	ErrDBPathEmpty = errors.New("toml config db.path can not be empty for the sqlite driver")

	// ErrDBHostEmpty error if a server driver is selected without db.host.
	ErrDBHostEmpty = errors.New("toml config db.host can not be empty")

	// ErrDBNameEmpty error if a server driver is selected without db.name.
	ErrDBNameEmpty = errors.New("toml config db.name can not be empty")
)
