// Package cli wires together the Cobra command tree for the steamer binary.
//
// It defines the root command and one subcommand per registered plugin,
// binds each plugin's options as flags, routes --help to the plugin's own
// help output, and returns deterministic exit codes.
package cli
