// Where: cli/internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface construction and error output.
package command

import (
	"io"

	"github.com/poruru/bluemix-scaffold/cli/internal/infra/ui"
)

func newUI(cli CLI, out io.Writer) ui.UserInterface {
	switch {
	case cli.NoEmoji:
		return ui.NewConsoleUIWithEmoji(out, false)
	case cli.Emoji:
		return ui.NewConsoleUIWithEmoji(out, true)
	default:
		return ui.NewConsoleUI(out)
	}
}

// exitWithError prints an error message and returns exit code 1.
func exitWithError(out io.Writer, err error) int {
	ui.NewConsoleUI(out).Error(err.Error())
	return 1
}
