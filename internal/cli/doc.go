// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags into the application's internal configuration.
//
// Besides the structured pflag pass, the package re-scans the raw argument
// vector to order the mutually exclusive -f/-s format flags: a parsed
// boolean cannot tell which of two conflicting flags came first.
package cli
