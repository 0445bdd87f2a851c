package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/sprocketship/sprocketship/deploy"
	"github.com/sprocketship/sprocketship/snowflake"
)

func (a *App) tokenCommand() *Command {
	var lifetime time.Duration

	return &Command{
		Name:    "token",
		Summary: "Print a key-pair JWT for the configured connection",
		Usage:   "sprocketship token [dir] [--lifetime duration]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("token", pflag.ContinueOnError)
			flags.DurationVar(&lifetime, "lifetime", snowflake.DefaultTokenLifetime, "token validity window")
			return flags
		},
		Run: func(args []string) error {
			return a.token(projectDir(args), lifetime)
		},
	}
}

// token signs and prints a JWT for Snowflake's SQL REST API, using the
// key-pair settings of the snowflake section. Useful for curl debugging
// and external tooling that shares the deployment identity.
func (a *App) token(dir string, lifetime time.Duration) error {
	project, err := deploy.LoadProject(dir)
	if err != nil {
		return err
	}
	conn, err := snowflake.ConnectionFromTree(project.Tree, deploy.ConfigFileName)
	if err != nil {
		return err
	}
	if conn.PrivateKeyPath == "" {
		return fmt.Errorf("the snowflake section has no private_key_path; token requires key-pair auth")
	}

	key, err := snowflake.LoadPrivateKey(conn.PrivateKeyPath, conn.PrivateKeyPassphrase)
	if err != nil {
		return err
	}
	signed, err := snowflake.KeyPairToken(conn.Account, conn.User, key, lifetime)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.Stdout, signed)
	return nil
}
