// Package cli implements the baro command-line interface.
//
// The package is organized around Cobra commands. The root command is the
// dashboard itself: baro is a pipe-first tool, so `producer | baro` starts
// charting immediately and everything else is a subcommand:
//
//	baro [flags]              - Chart numbers arriving on stdin
//	baro pattern add          - Store a named extraction regex
//	baro pattern remove       - Delete a stored pattern
//	baro pattern list         - Show stored patterns
//	baro version              - Print version and directory info
//	baro completion <shell>   - Generate shell completion
//
// # Flag Handling
//
// Dashboard flags layer over the defaults section of the config file: a
// flag the user set wins, anything else comes from config.yaml, which in
// turn falls back to built-in defaults. --config is a persistent flag so
// the pattern subcommands edit the same file the dashboard reads.
//
// # Terminal Handling
//
// Stdin carries the data stream, so the root command refuses to start when
// stdin is a terminal, and the dashboard reads its keystrokes from the
// controlling TTY instead. The pattern subcommands go the other way: their
// interactive prompts only appear when stdin is a terminal.
package cli
