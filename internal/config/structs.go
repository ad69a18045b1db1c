package config

import (
	"github.com/setstore/setstore/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode bool // enable dev mode for development
	Title   string
	DB      DB
	Log     logger.Log
}
