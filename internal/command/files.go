// Where: cli/internal/command/files.go
// What: files command.
// Why: Show which files each group contributes without touching the disk.
package command

import (
	"fmt"
	"io"

	"github.com/poruru/bluemix-scaffold/cli/internal/domain/fileset"
)

// FilesCmd lists every file group and its paths.
type FilesCmd struct {
	Group string `arg:"" optional:"" help:"Only list this group (base, docker, toolchain)"`
}

func runFiles(cli CLI, _ Dependencies, out io.Writer) int {
	u := newUI(cli, out)
	if name := cli.Files.Group; name != "" && !knownGroup(name) {
		return exitWithError(out, fmt.Errorf("unknown group %q (expected base, docker, or toolchain)", name))
	}
	for _, g := range fileset.Groups() {
		if cli.Files.Group != "" && string(g.Name) != cli.Files.Group {
			continue
		}
		u.List("📁", fmt.Sprintf("%s files", g.Name), g.Paths())
	}
	return 0
}

func knownGroup(name string) bool {
	for _, g := range fileset.Groups() {
		if string(g.Name) == name {
			return true
		}
	}
	return false
}
