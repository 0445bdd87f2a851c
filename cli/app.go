package cli

import (
	"fmt"
	"io"
	"strings"
)

// App wires the command set to its output streams. Tests run the app
// against buffers.
type App struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run parses args (without the program name) and executes the matching
// command. The return value is the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	app := &App{Stdout: stdout, Stderr: stderr}
	commands := []*Command{
		app.liftoffCommand(),
		app.buildCommand(),
		app.initCommand(),
		app.tokenCommand(),
	}

	if len(args) == 0 || args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		printHelp(stderr, commands)
		if len(args) == 0 {
			return 1
		}
		return 0
	}

	name := args[0]
	for _, c := range commands {
		if c.Name == name {
			if err := c.Execute(args[1:]); err != nil {
				fmt.Fprintln(stderr, err)
				return 1
			}
			return 0
		}
	}

	fmt.Fprintf(stderr, "unknown command %q\n\nRun 'sprocketship --help' for usage.\n", name)
	return 1
}

// projectDir returns the positional project directory, defaulting to ".".
func projectDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// warnNotFound prints the non-fatal warning for --only names that matched
// no procedure file.
func (a *App) warnNotFound(notFound []string) {
	if len(notFound) == 0 {
		return
	}
	fmt.Fprintln(a.Stdout, warnStyle.Render(
		"Could not find procedure(s): "+strings.Join(notFound, ", ")))
}
