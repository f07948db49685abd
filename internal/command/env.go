// Where: cli/internal/command/env.go
// What: .env loading ahead of flag parsing.
// Why: Let BMX_* variables from a .env file feed kong env defaults.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/poruru/bluemix-scaffold/cli/internal/meta"
	"github.com/poruru/bluemix-scaffold/cli/internal/infra/ui"
)

// loadEnvFiles loads --env-file when given, otherwise .env from the working
// directory when present. Variables already set in the environment win.
func loadEnvFiles(args []string, out io.Writer) {
	u := ui.NewConsoleUI(out)
	if path := envFileArg(args); path != "" {
		if err := godotenv.Load(path); err != nil {
			u.Warn(fmt.Sprintf("failed to load env file %s: %v", path, err))
		}
		return
	}
	if _, err := os.Stat(meta.EnvFile); err == nil {
		if err := godotenv.Load(meta.EnvFile); err != nil {
			u.Warn(fmt.Sprintf("failed to load %s: %v", meta.EnvFile, err))
		}
	}
}

// envFileArg extracts the --env-file value before kong parses the arguments.
func envFileArg(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			return ""
		}
		if value, ok := strings.CutPrefix(arg, "--env-file="); ok {
			return strings.TrimSpace(value)
		}
		if arg == "--env-file" && i+1 < len(args) {
			return strings.TrimSpace(args[i+1])
		}
	}
	return ""
}
