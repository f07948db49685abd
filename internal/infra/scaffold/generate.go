// Where: cli/internal/infra/scaffold/generate.go
// What: Generation entrypoint combining selection, assets, and the copier.
// Why: Give the CLI a single call that plans or writes a project's deployment files.
package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/bluemix-scaffold/cli/assets"
	"github.com/poruru/bluemix-scaffold/cli/internal/domain/fileset"
	"github.com/poruru/bluemix-scaffold/cli/internal/domain/template"
	"github.com/poruru/bluemix-scaffold/cli/internal/infra/fileops"
)

// Request describes one generation run.
type Request struct {
	Options fileset.Options
	Data    template.Data
	// TemplateDir, when set, holds a "templates/" tree overriding embedded assets.
	TemplateDir string
	DryRun      bool
}

// Result reports what a run planned and wrote.
type Result struct {
	Selection fileset.Selection
	DestDir   string
	Planned   []fileset.Entry
	Written   []string
}

// Generate resolves the destination, then writes (or, for a dry run, only
// plans) the selected file groups.
func Generate(req Request) (Result, error) {
	opts := req.Options
	dest := strings.TrimSpace(opts.DestDir)
	if dest == "" {
		dest = "."
	}
	abs, err := filepath.Abs(dest)
	if err != nil {
		return Result{}, fmt.Errorf("resolve destination: %w", err)
	}
	opts.DestDir = abs

	data := req.Data
	data.Command = firstNonEmpty(opts.Command, data.Command)
	data.EnableDocker = opts.EnableDocker
	data.EnableToolchain = opts.EnableToolchain

	result := Result{
		Selection: fileset.Select(opts),
		DestDir:   abs,
		Planned:   fileset.Plan(opts),
	}
	if req.DryRun {
		return result, nil
	}

	layers, err := templateLayers(req.TemplateDir)
	if err != nil {
		return result, err
	}
	copier := NewCopier(data, layers...)
	err = fileset.Generate(opts, copier.Copy)
	result.Written = copier.Written()
	return result, err
}

// templateLayers returns the override directory, when given, ahead of the
// embedded assets.
func templateLayers(dir string) ([]fs.FS, error) {
	embedded := fs.FS(assets.TemplatesFS)
	if strings.TrimSpace(dir) == "" {
		return []fs.FS{embedded}, nil
	}
	if !fileops.DirExists(dir) {
		return nil, fmt.Errorf("template dir %s: %w", dir, fs.ErrNotExist)
	}
	return []fs.FS{os.DirFS(dir), embedded}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
