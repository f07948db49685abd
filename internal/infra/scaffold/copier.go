// Where: cli/internal/infra/scaffold/copier.go
// What: Render-or-copy collaborator for file set generation.
// Why: Materialize template layers into the project, rendering templated assets.
package scaffold

import (
	"fmt"
	"io/fs"

	"github.com/poruru/bluemix-scaffold/cli/internal/domain/template"
	"github.com/poruru/bluemix-scaffold/cli/internal/infra/fileops"
)

// TemplateSuffix marks an asset that is rendered before it is written.
const TemplateSuffix = ".tmpl"

type layer struct {
	fsys     fs.FS
	renderer *template.Renderer
}

// Copier writes assets from ordered template layers to disk.
type Copier struct {
	layers  []layer
	data    template.Data
	written []string
}

// NewCopier returns a Copier rendering templates with data. Layers are
// searched first to last; nil layers are skipped.
func NewCopier(data template.Data, layers ...fs.FS) *Copier {
	c := &Copier{data: data.Normalize()}
	for _, fsys := range layers {
		if fsys == nil {
			continue
		}
		c.layers = append(c.layers, layer{fsys: fsys, renderer: template.NewRenderer(fsys)})
	}
	return c
}

// Copy materializes src at dest from the first layer holding "<src>.tmpl" or
// src. Within a layer the template is preferred and rendered; otherwise src is
// copied byte for byte. Existing files are replaced.
func (c *Copier) Copy(src, dest string) error {
	tmpl := src + TemplateSuffix
	for _, l := range c.layers {
		switch {
		case fileops.FileExistsFS(l.fsys, tmpl):
			content, err := l.renderer.Render(tmpl, c.data)
			if err != nil {
				return err
			}
			if err := fileops.WriteFile(dest, []byte(content), fileops.FileMode); err != nil {
				return fmt.Errorf("write %s: %w", dest, err)
			}
		case fileops.FileExistsFS(l.fsys, src):
			if err := fileops.CopyFromFS(l.fsys, src, dest, fileops.FileMode); err != nil {
				return fmt.Errorf("copy %s: %w", src, err)
			}
		default:
			continue
		}
		c.written = append(c.written, dest)
		return nil
	}
	return fmt.Errorf("template %s: %w", src, fs.ErrNotExist)
}

// Written returns the destinations written so far, in order.
func (c *Copier) Written() []string {
	return append([]string(nil), c.written...)
}
