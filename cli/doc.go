// Package cli implements the sprocketship command surface.
//
// Commands:
//   - liftoff: deploy procedures to Snowflake
//   - build: render procedure SQL to a target directory
//   - init: scaffold a starter project
//   - token: print a key-pair JWT for the configured connection
//
// Flag parsing uses spf13/pflag; human-facing output is styled with
// lipgloss, which degrades to plain text when stdout is not a terminal or
// NO_COLOR is set.
package cli
