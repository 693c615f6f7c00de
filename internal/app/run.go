package app

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/vk/zuuid/internal/format"
)

// Run executes one generation pass: an optional format-conflict warning
// to the error writer, then Count UUIDs to the output writer, one per
// line, in generation order.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.")

	if a.config.FormatConflict {
		a.warnFormatConflict()
	}

	for i := 0; i < a.config.Count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		id, err := a.gen.Generate()
		if err != nil {
			return fmt.Errorf("generating UUID %d of %d: %w", i+1, a.config.Count, err)
		}
		fmt.Fprintln(a.outW, format.Apply(id, a.config.PreferFull, a.config.Uppercase))
	}

	a.logger.Debug("App.Run method finished.", "count", a.config.Count)
	return nil
}

// warnFormatConflict prints the localized two-line conflict notice in
// yellow: the warning itself, then which family won and why.
func (a *App) warnFormatConflict() {
	a.logger.Debug("Format conflict detected.", "prefer_full", a.config.PreferFull)

	warn := color.New(color.FgYellow)
	warn.Fprintln(a.errW, a.msgs.ConflictWarning())
	if a.config.PreferFull {
		warn.Fprintln(a.errW, a.msgs.UsingFull())
	} else {
		warn.Fprintln(a.errW, a.msgs.UsingSimple())
	}
}
