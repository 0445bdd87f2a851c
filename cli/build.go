package cli

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/sprocketship/sprocketship/deploy"
	"github.com/sprocketship/sprocketship/notify"
)

func (a *App) buildCommand() *Command {
	var (
		target string
		only   []string
	)

	return &Command{
		Name:    "build",
		Summary: "Render procedure SQL to a target directory",
		Usage:   "sprocketship build [dir] [--target dir] [--only name ...]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("build", pflag.ContinueOnError)
			flags.StringVar(&target, "target", deploy.DefaultTarget, "output directory, relative to the project")
			flags.StringArrayVar(&only, "only", nil, "build only the named procedure (repeatable)")
			return flags
		},
		Run: func(args []string) error {
			return a.build(projectDir(args), target, only)
		},
	}
}

func (a *App) build(dir, target string, only []string) error {
	fmt.Fprintln(a.Stdout, titleStyle.Render("⚙️ Building sprocketship!"))

	project, err := deploy.LoadProject(dir)
	if err != nil {
		return err
	}
	notifier, err := notify.FromTree(project.Tree)
	if err != nil {
		return err
	}

	runner := deploy.NewRunner(project, notifier)
	summary, err := runner.Build(context.Background(), target, only)
	if err != nil {
		return err
	}

	for _, result := range summary.Results {
		if result.Err != nil {
			fmt.Fprintf(a.Stdout, "%s %s\n",
				failureStyle.Render(result.Name),
				titleStyle.Render("could not be built"))
			fmt.Fprintln(a.Stderr, result.Err)
			continue
		}
		fmt.Fprintf(a.Stdout, "%s %s\n",
			successStyle.Render(result.Name),
			titleStyle.Render("successfully built"))
	}
	a.warnNotFound(summary.NotFound)
	return summary.Err()
}
