// Where: cli/internal/infra/scaffold/generate_test.go
// What: On-disk tests for file set generation.
// Why: Ensure each option combination materializes exactly the expected groups.
package scaffold

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poruru/bluemix-scaffold/cli/internal/domain/fileset"
	"github.com/poruru/bluemix-scaffold/cli/internal/domain/template"
)

func TestGenerateFileGroups(t *testing.T) {
	tests := []struct {
		name    string
		opts    fileset.Options
		present []fileset.Group
		absent  []fileset.Group
	}{
		{
			name:    "all groups",
			opts:    fileset.Options{Command: "bluemix", EnableDocker: true, EnableToolchain: true},
			present: []fileset.Group{fileset.Base, fileset.Docker, fileset.Toolchain},
		},
		{
			name:    "docker only",
			opts:    fileset.Options{CmdOptions: fileset.Overrides{Docker: true}},
			present: []fileset.Group{fileset.Docker},
			absent:  []fileset.Group{fileset.Base, fileset.Toolchain},
		},
		{
			name:    "omit docker",
			opts:    fileset.Options{Command: "bluemix", EnableToolchain: true},
			present: []fileset.Group{fileset.Base, fileset.Toolchain},
			absent:  []fileset.Group{fileset.Docker},
		},
		{
			name:    "toolchain only",
			opts:    fileset.Options{CmdOptions: fileset.Overrides{Toolchain: true}},
			present: []fileset.Group{fileset.Toolchain},
			absent:  []fileset.Group{fileset.Base, fileset.Docker},
		},
		{
			name:    "omit toolchain",
			opts:    fileset.Options{Command: "bluemix", EnableDocker: true},
			present: []fileset.Group{fileset.Base, fileset.Docker},
			absent:  []fileset.Group{fileset.Toolchain},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			dest := t.TempDir()
			tc.opts.DestDir = dest

			result, err := Generate(Request{Options: tc.opts, Data: template.Data{AppName: "todo"}})
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			for _, g := range tc.present {
				assertGroup(t, dest, g, true)
			}
			for _, g := range tc.absent {
				assertGroup(t, dest, g, false)
			}
			if len(result.Written) != len(result.Planned) {
				t.Fatalf("written %d files, planned %d", len(result.Written), len(result.Planned))
			}
		})
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	dest := t.TempDir()
	req := Request{
		Options: fileset.Options{DestDir: dest, EnableDocker: true, EnableToolchain: true},
		Data:    template.Data{AppName: "todo"},
	}

	if _, err := Generate(req); err != nil {
		t.Fatalf("first generate: %v", err)
	}
	first := snapshotTree(t, dest)
	if _, err := Generate(req); err != nil {
		t.Fatalf("second generate: %v", err)
	}
	second := snapshotTree(t, dest)

	if len(first) != len(second) {
		t.Fatalf("file count changed: %d -> %d", len(first), len(second))
	}
	for path, content := range first {
		if second[path] != content {
			t.Fatalf("content changed for %s", path)
		}
	}
}

func TestGenerateDryRunWritesNothing(t *testing.T) {
	dest := t.TempDir()
	result, err := Generate(Request{
		Options: fileset.Options{DestDir: dest, EnableDocker: true},
		DryRun:  true,
	})
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if len(result.Planned) != len(fileset.Base.Paths())+len(fileset.Docker.Paths()) {
		t.Fatalf("unexpected plan size: %d", len(result.Planned))
	}
	if len(snapshotTree(t, dest)) != 0 {
		t.Fatalf("dry run must not write files")
	}
}

func TestGenerateRendersCommandIntoPipeline(t *testing.T) {
	dest := t.TempDir()
	_, err := Generate(Request{
		Options: fileset.Options{DestDir: dest, Command: "cf", CmdOptions: fileset.Overrides{Toolchain: true}},
		Data:    template.Data{AppName: "todo", Command: "bluemix"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dest, ".bluemix", "pipeline.yml"))
	if err != nil {
		t.Fatalf("read pipeline: %v", err)
	}
	if !strings.Contains(string(data), `cf app push`) {
		t.Fatalf("expected options command to win:\n%s", data)
	}
}

func TestGenerateUsesTemplateDirOverride(t *testing.T) {
	overrides := t.TempDir()
	custom := filepath.Join(overrides, "templates", ".cfignore")
	if err := os.MkdirAll(filepath.Dir(custom), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(custom, []byte("custom\n"), 0o600); err != nil {
		t.Fatalf("write override: %v", err)
	}

	dest := t.TempDir()
	_, err := Generate(Request{
		Options:     fileset.Options{DestDir: dest},
		Data:        template.Data{AppName: "todo"},
		TemplateDir: overrides,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dest, ".cfignore"))
	if err != nil {
		t.Fatalf("read .cfignore: %v", err)
	}
	if string(data) != "custom\n" {
		t.Fatalf("expected override content, got %q", data)
	}
	if _, err := os.Stat(filepath.Join(dest, "manifest.yml")); err != nil {
		t.Fatalf("expected embedded fallback for manifest.yml: %v", err)
	}
}

func TestGenerateVerbatimOverrideReplacesTemplate(t *testing.T) {
	overrides := t.TempDir()
	custom := filepath.Join(overrides, "templates", "manifest.yml")
	if err := os.MkdirAll(filepath.Dir(custom), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(custom, []byte("custom\n"), 0o600); err != nil {
		t.Fatalf("write override: %v", err)
	}

	dest := t.TempDir()
	_, err := Generate(Request{
		Options:     fileset.Options{DestDir: dest},
		Data:        template.Data{AppName: "todo"},
		TemplateDir: overrides,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dest, "manifest.yml"))
	if err != nil {
		t.Fatalf("read manifest.yml: %v", err)
	}
	if string(data) != "custom\n" {
		t.Fatalf("expected override content, got %q", data)
	}
}

func TestGenerateRejectsMissingTemplateDir(t *testing.T) {
	_, err := Generate(Request{
		Options:     fileset.Options{DestDir: t.TempDir()},
		TemplateDir: filepath.Join(t.TempDir(), "missing"),
	})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error for missing template dir, got %v", err)
	}
}

func assertGroup(t *testing.T, root string, g fileset.Group, want bool) {
	t.Helper()
	for _, rel := range g.Paths() {
		path := filepath.Join(root, filepath.FromSlash(rel))
		_, err := os.Stat(path)
		exists := err == nil
		if exists != want {
			t.Fatalf("%s group file %s: exists=%v want %v", g.Name, rel, exists, want)
		}
	}
}

func snapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()
	files := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files[rel] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	return files
}
