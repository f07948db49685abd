// Where: cli/internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/poruru/bluemix-scaffold/cli/internal/infra/scaffold"
	"github.com/poruru/bluemix-scaffold/cli/internal/infra/ui"
	"github.com/poruru/bluemix-scaffold/cli/internal/meta"
	"github.com/poruru/bluemix-scaffold/cli/internal/version"
)

// Dependencies holds the injected collaborators used by command handlers.
type Dependencies struct {
	Out      io.Writer
	Generate func(scaffold.Request) (scaffold.Result, error)
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	EnvFile  string      `name:"env-file" help:"Path to .env file"`
	Config   string      `short:"c" name:"config" help:"Path to ${config_file} (default: search upward from --dest)"`
	Emoji    bool        `name:"emoji" help:"Enable emoji output (default: auto)"`
	NoEmoji  bool        `name:"no-emoji" help:"Disable emoji output"`
	Generate GenerateCmd `cmd:"" help:"Generate deployment files"`
	Files    FilesCmd    `cmd:"" help:"List the generated file groups"`
	Init     InitCmd     `cmd:"" help:"Write a default ${config_file}"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

// Run parses args, dispatches to the matching handler, and returns the exit code.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.Generate == nil {
		deps.Generate = scaffold.Generate
	}

	if len(args) == 0 {
		return runNoArgs(out)
	}

	loadEnvFiles(args, out)

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description("Generate Bluemix deployment, Docker, and toolchain files."),
		kong.Writers(out, out),
		kong.Vars{"config_file": meta.ConfigFile},
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(err, out)
	}

	if exitCode, handled := dispatchCommand(ctx.Command(), cli, deps, out); handled {
		return exitCode
	}

	newUI(cli, out).Warn("unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"generate": runGenerate,
		"files":    runFiles,
		"init":     runInit,
		"version":  runVersion,
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "files ", handler: runFiles},
	}
	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}
	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(cli CLI, _ Dependencies, out io.Writer) int {
	newUI(cli, out).Info(version.GetVersion())
	return 0
}

// runNoArgs prints a short usage hint.
func runNoArgs(out io.Writer) int {
	u := ui.NewConsoleUI(out)
	u.Info("Usage:")
	u.Info(fmt.Sprintf("  %s generate [--dest <dir>] [--docker|--no-docker] [--toolchain|--no-toolchain]", meta.AppName))
	u.Info(fmt.Sprintf("  %s generate --docker-only | --toolchain-only", meta.AppName))
	u.Info("")
	u.Info(fmt.Sprintf("Try: %s --help", meta.AppName))
	return 0
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(err error, out io.Writer) int {
	msg := err.Error()
	if strings.Contains(msg, "expected string value") {
		u := ui.NewConsoleUI(out)
		switch {
		case strings.Contains(msg, "--dest"):
			u.Warn("`-d/--dest` expects a directory.")
			u.Info(fmt.Sprintf("Example: %s generate -d ./my-app", meta.AppName))
			return 1
		case strings.Contains(msg, "--env-file"):
			u.Warn("`--env-file` expects a value. Provide a file path.")
			u.Info(fmt.Sprintf("Example: %s generate --env-file .env.prod", meta.AppName))
			return 1
		}
	}
	return exitWithError(out, err)
}
