package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/sprocketship/sprocketship/deploy"
	"github.com/sprocketship/sprocketship/notify"
	"github.com/sprocketship/sprocketship/snowflake"
)

func (a *App) liftoffCommand() *Command {
	var (
		show   bool
		dryRun bool
		only   []string
	)

	return &Command{
		Name:    "liftoff",
		Summary: "Deploy stored procedures to Snowflake",
		Usage:   "sprocketship liftoff [dir] [--show] [--dry-run] [--only name ...]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("liftoff", pflag.ContinueOnError)
			flags.BoolVar(&show, "show", false, "print rendered SQL after deployment")
			flags.BoolVar(&dryRun, "dry-run", false, "preview statements without connecting")
			flags.StringArrayVar(&only, "only", nil, "deploy only the named procedure (repeatable)")
			return flags
		},
		Run: func(args []string) error {
			return a.liftoff(projectDir(args), show, dryRun, only)
		},
	}
}

func (a *App) liftoff(dir string, show, dryRun bool, only []string) error {
	fmt.Fprintln(a.Stdout, titleStyle.Render("🚀 Sprocketship lifting off!"))

	project, err := deploy.LoadProject(dir)
	if err != nil {
		return err
	}
	conn, err := snowflake.ConnectionFromTree(project.Tree, deploy.ConfigFileName)
	if err != nil {
		return err
	}
	notifier, err := notify.FromTree(project.Tree)
	if err != nil {
		return err
	}

	runner := deploy.NewRunner(project, notifier)
	runner.RunID = deploy.NewRunID()
	ctx := context.Background()

	if dryRun {
		fmt.Fprintln(a.Stdout, dimStyle.Render("Running in dry-run mode (preview only). No statements will be executed."))
		summary, err := runner.Plan(ctx, conn.Role, only)
		if err != nil {
			return err
		}
		a.printPlan(summary)
		a.warnNotFound(summary.NotFound)
		return a.reportFailures(summary)
	}

	session, err := snowflake.Open(ctx, conn, snowflake.WithQueryTag("sprocketship/"+runner.RunID))
	if err != nil {
		return err
	}
	defer session.Close()

	summary, err := runner.Liftoff(ctx, session, conn.Role, only)
	if err != nil {
		return err
	}

	for _, result := range summary.Results {
		if result.Err != nil {
			fmt.Fprintf(a.Stdout, "%s %s\n",
				failureStyle.Render(result.Name),
				titleStyle.Render("could not be launched."))
			fmt.Fprintln(a.Stderr, result.Err)
			continue
		}
		fmt.Fprintf(a.Stdout, "%s %s %s\n",
			successStyle.Render(result.Name),
			titleStyle.Render("launched into schema"),
			targetStyle.Render(result.Target()))
		if show {
			fmt.Fprintln(a.Stdout, result.SQL)
		}
	}
	a.warnNotFound(summary.NotFound)
	return a.reportFailures(summary)
}

// printPlan writes the dry-run preview for every resolved procedure. The
// rendered SQL is always shown; that is the point of a dry run.
func (a *App) printPlan(summary *deploy.Summary) {
	for _, result := range summary.Results {
		if result.Err != nil {
			fmt.Fprintf(a.Stdout, "%s %s\n",
				failureStyle.Render(result.Name),
				titleStyle.Render("could not be launched."))
			fmt.Fprintln(a.Stderr, result.Err)
			continue
		}
		fmt.Fprintf(a.Stdout, "%s %s %s %s %s\n",
			successStyle.Render(result.Name),
			titleStyle.Render("would be deployed to"),
			targetStyle.Render(result.Target()),
			titleStyle.Render("using role"),
			targetStyle.Render(strings.ToUpper(result.Role)))
		fmt.Fprintln(a.Stdout, result.SQL)
		if len(result.GrantTargets) > 0 {
			fmt.Fprintln(a.Stdout, titleStyle.Render("Would grant usage to:"))
			for _, grant := range result.GrantTargets {
				fmt.Fprintf(a.Stdout, "  %s: %s\n", strings.ToLower(grant.GranteeType), grant.Grantee)
			}
		}
	}
}

// reportFailures turns per-procedure failures into the aggregate non-zero
// exit, after every file was attempted.
func (a *App) reportFailures(summary *deploy.Summary) error {
	return summary.Err()
}
