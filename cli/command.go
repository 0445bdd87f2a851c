package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command represents a CLI subcommand.
type Command struct {
	// Name is the command name as typed by the user (e.g., "liftoff").
	Name string

	// Summary is a one-line description shown in the help listing.
	Summary string

	// Usage is the usage string (e.g., "sprocketship liftoff [dir] [flags]").
	Usage string

	// Flags returns a configured *pflag.FlagSet for this command. If nil,
	// the command accepts no flags.
	Flags func() *pflag.FlagSet

	// Run executes the command with the remaining positional args.
	Run func(args []string) error
}

// Execute parses the command's flags and runs it.
func (c *Command) Execute(args []string) error {
	if c.Flags == nil {
		return c.Run(args)
	}

	flagSet := c.Flags()
	flagSet.SetOutput(io.Discard)
	if err := flagSet.Parse(args); err != nil {
		return fmt.Errorf("%s: %w\n\nUsage: %s", c.Name, err, c.Usage)
	}
	return c.Run(flagSet.Args())
}

// printHelp writes the top-level help listing.
func printHelp(w io.Writer, commands []*Command) {
	fmt.Fprintln(w, "sprocketship deploys Snowflake stored procedures from versioned source files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: sprocketship <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range commands {
		fmt.Fprintf(tw, "  %s\t%s\n", c.Name, c.Summary)
	}
	tw.Flush()
}
