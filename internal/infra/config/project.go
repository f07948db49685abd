// Where: cli/internal/infra/config/project.go
// What: Project config load/save.
// Why: Persist per-project generator defaults in <project>/bmx.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/bluemix-scaffold/cli/internal/domain/template"
	"github.com/poruru/bluemix-scaffold/cli/internal/infra/fileops"
	"github.com/poruru/bluemix-scaffold/cli/internal/meta"
	"gopkg.in/yaml.v3"
)

// ProjectConfig represents <project>/bmx.yaml.
type ProjectConfig struct {
	Version   int       `yaml:"version"`
	Command   string    `yaml:"command,omitempty"`
	Docker    *bool     `yaml:"docker,omitempty"`
	Toolchain *bool     `yaml:"toolchain,omitempty"`
	App       AppConfig `yaml:"app,omitempty"`
}

// AppConfig holds the application values rendered into deployment files.
type AppConfig struct {
	Name        string `yaml:"name,omitempty"`
	Memory      string `yaml:"memory,omitempty"`
	Instances   int    `yaml:"instances,omitempty"`
	Domain      string `yaml:"domain,omitempty"`
	Host        string `yaml:"host,omitempty"`
	DiskQuota   string `yaml:"disk_quota,omitempty"`
	Region      string `yaml:"region,omitempty"`
	NodeVersion string `yaml:"node_version,omitempty"`
}

// Default returns the config written by `bmx init`.
func Default(appName string) ProjectConfig {
	data := template.Data{AppName: appName}.Normalize()
	enabled := true
	return ProjectConfig{
		Version:   1,
		Command:   data.Command,
		Docker:    &enabled,
		Toolchain: &enabled,
		App: AppConfig{
			Name:        data.AppName,
			Memory:      data.Memory,
			Instances:   data.Instances,
			Domain:      data.Domain,
			DiskQuota:   data.DiskQuota,
			Region:      data.Region,
			NodeVersion: data.NodeVersion,
		},
	}
}

// ConfigPath returns the path to the project config file.
func ConfigPath(projectRoot string) (string, error) {
	root := strings.TrimSpace(projectRoot)
	if root == "" {
		return "", fmt.Errorf("project root is required")
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return filepath.Join(root, meta.ConfigFile), nil
}

// Load reads, validates, and parses a project config file.
func Load(path string) (ProjectConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return ProjectConfig{}, fmt.Errorf("read project config: %w", err)
	}
	if err := Validate(payload); err != nil {
		return ProjectConfig{}, fmt.Errorf("validate %s: %w", path, err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return ProjectConfig{}, fmt.Errorf("decode project config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads path, returning Default when the file does not exist.
func LoadOrDefault(path, appName string) (ProjectConfig, bool, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return Default(appName), false, nil
	}
	return ProjectConfig{}, false, err
}

// Save writes cfg to path as YAML.
func Save(path string, cfg ProjectConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode project config: %w", err)
	}
	if err := fileops.WriteFile(path, payload, fileops.FileMode); err != nil {
		return fmt.Errorf("write project config: %w", err)
	}
	return nil
}

// TemplateData maps the config onto template values. Blank fields stay blank
// so callers can layer flags before normalizing. An omitted docker or
// toolchain key keeps that group enabled.
func (c ProjectConfig) TemplateData() template.Data {
	return template.Data{
		AppName:         c.App.Name,
		Command:         c.Command,
		Memory:          c.App.Memory,
		Instances:       c.App.Instances,
		Domain:          c.App.Domain,
		Host:            c.App.Host,
		Region:          c.App.Region,
		DiskQuota:       c.App.DiskQuota,
		NodeVersion:     c.App.NodeVersion,
		EnableDocker:    boolOrDefault(c.Docker, true),
		EnableToolchain: boolOrDefault(c.Toolchain, true),
	}
}

func boolOrDefault(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
