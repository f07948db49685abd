// Where: cli/internal/domain/template/renderer.go
// What: Render deployment file templates.
// Why: Substitute project values into manifests, Dockerfiles, and pipeline configs.
package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Renderer parses templates from fsys once and executes them on demand.
type Renderer struct {
	fsys  fs.FS
	cache sync.Map
}

// NewRenderer returns a Renderer reading templates from fsys.
func NewRenderer(fsys fs.FS) *Renderer {
	return &Renderer{fsys: fsys}
}

// Render executes the template at name with data.
func (r *Renderer) Render(name string, data Data) (string, error) {
	tmpl, err := r.load(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func (r *Renderer) load(name string) (*template.Template, error) {
	if value, ok := r.cache.Load(name); ok {
		cached, ok := value.(*template.Template)
		if !ok {
			return nil, fmt.Errorf("template cache type mismatch for %s", name)
		}
		return cached, nil
	}
	tmpl, err := template.New(path.Base(name)).
		Option("missingkey=error").
		Funcs(sprig.TxtFuncMap()).
		ParseFS(r.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	actual, _ := r.cache.LoadOrStore(name, tmpl)
	return actual.(*template.Template), nil
}
