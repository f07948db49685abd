package command

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poruru/bluemix-scaffold/cli/internal/infra/config"
	"github.com/poruru/bluemix-scaffold/cli/internal/meta"
)

func TestRunInitWritesConfig(t *testing.T) {
	dest := t.TempDir()
	var out bytes.Buffer

	if code := Run([]string{"init", "-d", dest, "--name", "todo", "--command", "bx"}, Dependencies{Out: &out}); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, out.String())
	}
	cfg, err := config.Load(filepath.Join(dest, meta.ConfigFile))
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if cfg.App.Name != "todo" || cfg.Command != "bx" {
		t.Fatalf("unexpected config: %#v", cfg)
	}
}

func TestRunInitRefusesOverwrite(t *testing.T) {
	dest := t.TempDir()
	if code := Run([]string{"init", "-d", dest}, Dependencies{Out: &bytes.Buffer{}}); code != 0 {
		t.Fatalf("first init failed")
	}

	var out bytes.Buffer
	if code := Run([]string{"init", "-d", dest}, Dependencies{Out: &out}); code == 0 {
		t.Fatalf("expected second init to fail")
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Fatalf("unexpected output: %q", out.String())
	}
	if code := Run([]string{"init", "-d", dest, "--force"}, Dependencies{Out: &bytes.Buffer{}}); code != 0 {
		t.Fatalf("expected --force to overwrite")
	}
}
