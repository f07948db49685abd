// Where: cli/internal/infra/config/find.go
// What: Project config discovery.
// Why: Let commands run from any subdirectory of a configured project.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/poruru/bluemix-scaffold/cli/internal/infra/fileops"
	"github.com/poruru/bluemix-scaffold/cli/internal/meta"
)

var errConfigNotFound = errors.New("project config not found")

// FindConfig searches startDir and its parents for the project config file.
// It returns an error wrapping os.ErrNotExist when none is found.
func FindConfig(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, meta.ConfigFile)
		if fileops.FileExists(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Join(errConfigNotFound, os.ErrNotExist)
		}
		dir = parent
	}
}
