package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/zuuid/internal/app"
	"github.com/vk/zuuid/internal/cli"
	"github.com/vk/zuuid/internal/i18n"
)

// main is the entrypoint for the zuuid tool.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:], os.LookupEnv); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. lookupEnv supplies the locale variables; production passes
// os.LookupEnv, tests pass fakes.
func run(outW, errW io.Writer, args []string, lookupEnv func(string) (string, bool)) error {
	msgs := i18n.NewMessages(i18n.Detect(lookupEnv))

	config, shouldExit, err := cli.Parse(args, outW, msgs)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	return app.NewApp(outW, errW, config, msgs).Run(context.Background())
}
