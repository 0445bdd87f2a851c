package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sprocketship/sprocketship/deploy"
)

const starterConfig = `snowflake:
  account: my_org-my_account
  user: deployer
  # Or switch to key-pair auth: authenticator: keypair, private_key_path: ...
  password: CHANGE_ME
  role: sysadmin
  warehouse: compute_wh

procedures:
  +database: dev
  +schema: utils
  +language: javascript
  +execute_as: owner
  +returns: varchar
`

const starterProcedure = `/*
comment: Says hello. Replace with something useful.
args:
  - name: planet
    type: varchar
*/
return "Hello, " + PLANET + "!";
`

func (a *App) initCommand() *Command {
	return &Command{
		Name:    "init",
		Summary: "Scaffold a starter project",
		Usage:   "sprocketship init [dir]",
		Run: func(args []string) error {
			return a.initProject(projectDir(args))
		},
	}
}

func (a *App) initProject(dir string) error {
	configPath := filepath.Join(dir, deploy.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", configPath)
	}

	if err := os.MkdirAll(filepath.Join(dir, "examples"), 0o755); err != nil {
		return fmt.Errorf("create project directories: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", configPath, err)
	}
	examplePath := filepath.Join(dir, "examples", "hello_world.js")
	if err := os.WriteFile(examplePath, []byte(starterProcedure), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", examplePath, err)
	}

	fmt.Fprintln(a.Stdout, titleStyle.Render("🛠 Sprocketship project created."))
	fmt.Fprintf(a.Stdout, "  %s\n  %s\n\n", configPath, examplePath)
	fmt.Fprintln(a.Stdout, "Edit the snowflake section, then run 'sprocketship build' to try it.")
	return nil
}
