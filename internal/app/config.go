package app

import (
	"errors"
	"fmt"

	"github.com/vk/zuuid/internal/uuidgen"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Version selects the UUID variant to generate.
	Version uuidgen.Version
	// Count is the number of UUIDs to print, one per line.
	Count int
	// Uppercase renders the hex digits in uppercase.
	Uppercase bool
	// PreferFull selects the hyphenated 36-character form; false selects
	// the 32-character simple form.
	PreferFull bool
	// FormatConflict records that both format families were requested on
	// the command line. Run emits a warning before generating.
	FormatConflict bool

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Version {
	case uuidgen.V4, uuidgen.V7:
		// valid
	default:
		return nil, fmt.Errorf("Version must be %s or %s", uuidgen.V4, uuidgen.V7)
	}

	if cfg.Count < 1 {
		return nil, errors.New("Count must be a positive integer")
	}

	return &cfg, nil
}
