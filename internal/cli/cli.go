package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"github.com/vk/zuuid/internal/app"
	"github.com/vk/zuuid/internal/i18n"
	"github.com/vk/zuuid/internal/uuidgen"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usageHint = "Run 'zuuid --help' for usage."

// aliasOf maps the case-variant short aliases onto their canonical
// letters, so the flag set only defines one shorthand per option.
var aliasOf = map[byte]byte{
	'u': 'U',
	'S': 's',
	'F': 'f',
	'v': 'V',
}

// flagValues collects the destinations the flag set parses into.
type flagValues struct {
	version   *string
	upper     *bool
	count     *int
	logFormat *string
	logLevel  *string
	help      *bool
}

// newFlagSet declares the complete flag surface. The value-taking maps
// in precedence.go mirror these declarations, so the raw-argument
// scanners skip exactly the value slots pflag consumes.
func newFlagSet() (*pflag.FlagSet, *flagValues) {
	flagSet := pflag.NewFlagSet("zuuid", pflag.ContinueOnError)
	flagSet.SortFlags = false
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() {}

	values := &flagValues{}
	values.version = flagSet.StringP("uuid-version", "V", "4", "UUID version to generate. Options: '4' or '7'.")
	values.upper = flagSet.BoolP("upper", "U", false, "Print UUIDs in uppercase hex.")
	// -f and -s are declared so pflag accepts and documents them, but
	// their parsed values are deliberately unused: ResolveFormat already
	// decided the outcome from the raw argument order, which these
	// booleans cannot represent.
	flagSet.BoolP("full", "f", false, "Print UUIDs with hyphens (36 characters, the default).")
	flagSet.BoolP("simple", "s", false, "Print UUIDs without hyphens (32 characters).")
	values.count = flagSet.IntP("count", "n", 1, "Number of UUIDs to generate.")
	values.logFormat = flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	values.logLevel = flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	values.help = flagSet.BoolP("help", "h", false, "Print this help and exit.")
	return flagSet, values
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Validation messages for user-supplied values come from msgs.
func Parse(args []string, output io.Writer, msgs *i18n.Messages) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	// Format precedence is settled against the raw tokens before pflag
	// collapses clusters and repeats into booleans.
	pref := ResolveFormat(args)
	slog.Debug("Format precedence resolved.", "prefer_full", pref.PreferFull, "conflict", pref.Conflict)

	flagSet, values := newFlagSet()

	if err := flagSet.Parse(normalizeArgs(args)); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("%v\n%s", err, usageHint)}
	}
	slog.Debug("Arguments parsed successfully.")

	if *values.help {
		printUsage(output, flagSet)
		return nil, true, nil
	}

	if flagSet.NArg() > 0 {
		msg := fmt.Sprintf("unexpected argument: %q\n%s", flagSet.Arg(0), usageHint)
		return nil, false, &ExitError{Code: 2, Message: msg}
	}

	logFormat := strings.ToLower(*values.logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*values.logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	version, err := uuidgen.ParseVersion(*values.version)
	if err != nil {
		msg := fmt.Sprintf("%s\n%s", msgs.InvalidVersion(*values.version), usageHint)
		return nil, false, &ExitError{Code: 2, Message: msg}
	}

	if *values.count < 1 {
		msg := fmt.Sprintf("%s\n%s", msgs.InvalidCount(*values.count), usageHint)
		return nil, false, &ExitError{Code: 2, Message: msg}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Version:        version,
		Count:          *values.count,
		Uppercase:      *values.upper,
		PreferFull:     pref.PreferFull,
		FormatConflict: pref.Conflict,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// normalizeArgs rewrites the case-variant short aliases to their
// canonical letters inside short-flag clusters. Long options, value
// slots, attached values and everything after "--" pass through
// untouched.
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)

	skipNext := false
	for i, arg := range out {
		if skipNext {
			skipNext = false
			continue
		}
		if arg == "--" {
			break
		}
		if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
			continue
		}

		b := []byte(arg)
		for j := 1; j < len(b); j++ {
			if b[j] == '=' {
				// The rest of the token is a value, not flag letters.
				break
			}
			if canonical, ok := aliasOf[b[j]]; ok {
				b[j] = canonical
			}
			if valueTakingShort[b[j]] {
				if j == len(b)-1 {
					skipNext = true
				}
				break
			}
		}
		out[i] = string(b)
	}
	return out
}

// printUsage writes the full help text. Help stays in English, matching
// the behavior of the flag parser's own diagnostics.
func printUsage(output io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(output, `
zuuid - Generate UUID v4 (random) or v7 (time-ordered) identifiers.

Usage:
  zuuid [options]

Options:
%s
The short flags also accept case-variant aliases: -u for -U, -S for -s,
-F for -f, and -v for -V.
`, flagSet.FlagUsages())
}
