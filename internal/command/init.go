// Where: cli/internal/command/init.go
// What: init command.
// Why: Write a starter project config so later runs reuse the same values.
package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/poruru/bluemix-scaffold/cli/internal/infra/config"
	"github.com/poruru/bluemix-scaffold/cli/internal/infra/fileops"
)

// InitCmd defines the init command flags.
type InitCmd struct {
	Dest    string `short:"d" default:"." help:"Project directory"`
	Name    string `short:"n" env:"BMX_APP_NAME" help:"Application name (default: directory name)"`
	Command string `env:"BMX_COMMAND" help:"CLI command used by pipeline scripts"`
	Force   bool   `short:"f" help:"Overwrite an existing config"`
}

func runInit(cli CLI, _ Dependencies, out io.Writer) int {
	cmd := cli.Init
	path, err := config.ConfigPath(cmd.Dest)
	if err != nil {
		return exitWithError(out, err)
	}
	if fileops.FileExists(path) && !cmd.Force {
		return exitWithError(out, fmt.Errorf("%s already exists (use --force to overwrite)", path))
	}

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		name = defaultAppName(cmd.Dest)
	}
	cfg := config.Default(name)
	if command := strings.TrimSpace(cmd.Command); command != "" {
		cfg.Command = command
	}
	if err := config.Save(path, cfg); err != nil {
		return exitWithError(out, err)
	}
	newUI(cli, out).Success(fmt.Sprintf("Wrote %s", path))
	return 0
}
