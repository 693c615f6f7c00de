package app

import (
	"io"
	"log/slog"

	"github.com/vk/zuuid/internal/i18n"
	"github.com/vk/zuuid/internal/uuidgen"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
	msgs   *i18n.Messages
	gen    *uuidgen.Generator
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, writing
// diagnostics to errW so that outW carries nothing but UUIDs.
func NewApp(outW, errW io.Writer, config *Config, msgs *i18n.Messages) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, errW)
	logger.Debug("Logger configured successfully.", "language", msgs.Tag())

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		config: config,
		msgs:   msgs,
		gen:    uuidgen.NewGenerator(config.Version),
	}
}
