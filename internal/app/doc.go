// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the single-shot generation lifecycle,
// decoupled from the CLI entrypoint.
package app
