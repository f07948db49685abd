// Where: cli/cmd/bmx/main.go
// What: CLI entrypoint.
// Why: Execute bmx commands with default dependencies.
package main

import (
	"os"

	"github.com/poruru/bluemix-scaffold/cli/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:], command.Dependencies{Out: os.Stdout}))
}
