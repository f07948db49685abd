// Where: cli/internal/command/generate.go
// What: generate command.
// Why: Resolve flags and project config into generation options, then write the files.
package command

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/bluemix-scaffold/cli/internal/domain/fileset"
	"github.com/poruru/bluemix-scaffold/cli/internal/domain/template"
	"github.com/poruru/bluemix-scaffold/cli/internal/infra/config"
	"github.com/poruru/bluemix-scaffold/cli/internal/infra/scaffold"
	"github.com/poruru/bluemix-scaffold/cli/internal/infra/ui"
)

// GenerateCmd defines the generate command flags.
type GenerateCmd struct {
	Dest          string `short:"d" default:"." help:"Destination project directory"`
	Name          string `short:"n" env:"BMX_APP_NAME" help:"Application name"`
	Command       string `env:"BMX_COMMAND" help:"CLI command used by pipeline scripts (bluemix, bx, cf)"`
	Docker        bool   `name:"docker" help:"Generate Docker files"`
	NoDocker      bool   `name:"no-docker" help:"Skip Docker files"`
	Toolchain     bool   `name:"toolchain" help:"Generate toolchain files"`
	NoToolchain   bool   `name:"no-toolchain" help:"Skip toolchain files"`
	DockerOnly    bool   `name:"docker-only" help:"Generate only Docker files"`
	ToolchainOnly bool   `name:"toolchain-only" help:"Generate only toolchain files"`
	Templates     string `env:"BMX_TEMPLATES" help:"Directory holding a templates/ tree that overrides built-in templates"`
	DryRun        bool   `name:"dry-run" help:"Show planned files without writing"`
}

func runGenerate(cli CLI, deps Dependencies, out io.Writer) int {
	u := newUI(cli, out)
	req, err := resolveGenerateRequest(cli)
	if err != nil {
		return exitWithError(out, err)
	}

	result, err := deps.Generate(req)
	if err != nil {
		return exitWithError(out, err)
	}

	u.Block("📦", "Generation", []ui.KeyValue{
		{Key: "Destination", Value: result.DestDir},
		{Key: "Mode", Value: result.Selection.String()},
		{Key: "Files", Value: len(result.Planned)},
	})
	if req.DryRun {
		u.List("📝", "Planned files", plannedPaths(result.Planned))
		u.Success("Dry run complete (nothing written)")
		return 0
	}
	u.List("📝", "Written files", relativeTo(result.DestDir, result.Written))
	u.Success(fmt.Sprintf("Generated %d files", len(result.Written)))
	return 0
}

// resolveGenerateRequest layers defaults, project config, and flags, in that order.
func resolveGenerateRequest(cli CLI) (scaffold.Request, error) {
	cmd := cli.Generate
	if cmd.Docker && cmd.NoDocker {
		return scaffold.Request{}, errors.New("--docker and --no-docker are mutually exclusive")
	}
	if cmd.Toolchain && cmd.NoToolchain {
		return scaffold.Request{}, errors.New("--toolchain and --no-toolchain are mutually exclusive")
	}

	dest := strings.TrimSpace(cmd.Dest)
	if dest == "" {
		dest = "."
	}
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		name = defaultAppName(dest)
	}
	cfg, err := loadProjectConfig(cli.Config, dest, name)
	if err != nil {
		return scaffold.Request{}, err
	}

	data := cfg.TemplateData()
	if strings.TrimSpace(cmd.Name) != "" || data.AppName == "" {
		data.AppName = name
	}
	if command := strings.TrimSpace(cmd.Command); command != "" {
		data.Command = command
	}
	data = data.Normalize()

	opts := fileset.Options{
		DestDir:         dest,
		Command:         data.Command,
		EnableDocker:    flagOverride(data.EnableDocker, cmd.Docker, cmd.NoDocker),
		EnableToolchain: flagOverride(data.EnableToolchain, cmd.Toolchain, cmd.NoToolchain),
		CmdOptions: fileset.Overrides{
			Docker:    cmd.DockerOnly,
			Toolchain: cmd.ToolchainOnly,
		},
	}
	return scaffold.Request{
		Options:     opts,
		Data:        data,
		TemplateDir: cmd.Templates,
		DryRun:      cmd.DryRun,
	}, nil
}

// loadProjectConfig reads an explicit --config path, or searches upward from
// dest; without a config file the generator defaults apply. A missing
// explicit path is an error.
func loadProjectConfig(explicit, dest, appName string) (config.ProjectConfig, error) {
	if path := strings.TrimSpace(explicit); path != "" {
		cfg, found, err := config.LoadOrDefault(path, appName)
		if err != nil {
			return config.ProjectConfig{}, err
		}
		if !found {
			return config.ProjectConfig{}, fmt.Errorf("config file not found: %s", path)
		}
		return cfg, nil
	}

	path, err := config.FindConfig(dest)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config.ProjectConfig{}, err
		}
		if path, err = config.ConfigPath(dest); err != nil {
			return config.ProjectConfig{}, err
		}
	}
	cfg, _, err := config.LoadOrDefault(path, appName)
	return cfg, err
}

func flagOverride(current, enable, disable bool) bool {
	switch {
	case enable:
		return true
	case disable:
		return false
	default:
		return current
	}
}

func defaultAppName(dest string) string {
	abs, err := filepath.Abs(dest)
	if err != nil {
		return template.DefaultAppName
	}
	return filepath.Base(abs)
}

func plannedPaths(entries []fileset.Entry) []string {
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, fmt.Sprintf("[%s] %s", e.Group, e.Path))
	}
	return paths
}

func relativeTo(root string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if rel, err := filepath.Rel(root, p); err == nil {
			p = filepath.ToSlash(rel)
		}
		out = append(out, p)
	}
	return out
}
