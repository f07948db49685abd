// Where: cli/internal/domain/fileset/fileset.go
// What: File group selection and conditional copy.
// Why: Decide which deployment files a project receives from the generation options.
package fileset

import (
	"path"
	"path/filepath"
)

// TemplateRoot is the asset directory holding one template per generated file.
const TemplateRoot = "templates"

// GroupName identifies a fixed file group.
type GroupName string

const (
	GroupBase      GroupName = "base"
	GroupDocker    GroupName = "docker"
	GroupToolchain GroupName = "toolchain"
)

// Group is a named, ordered list of project-relative file paths.
type Group struct {
	Name  GroupName
	paths []string
}

// Paths returns a copy of the group's paths in declared order.
func (g Group) Paths() []string {
	return append([]string(nil), g.paths...)
}

var (
	// Base files are always generated in default mode.
	Base = Group{Name: GroupBase, paths: []string{
		".bluemix/datasources-config.json",
		"server/datasources.bluemix.js",
		".cfignore",
		"manifest.yml",
	}}
	// Docker files describe the container build.
	Docker = Group{Name: GroupDocker, paths: []string{
		".dockerignore",
		"Dockerfile",
	}}
	// Toolchain files describe the delivery pipeline.
	Toolchain = Group{Name: GroupToolchain, paths: []string{
		".bluemix/deploy.json",
		".bluemix/pipeline.yml",
		".bluemix/toolchain.yml",
	}}
)

// Groups returns every group in generation order.
func Groups() []Group {
	return []Group{Base, Docker, Toolchain}
}

// Overrides narrows generation to a single group when a key is set.
type Overrides struct {
	Docker    bool
	Toolchain bool
}

// Options controls which groups are generated and where.
type Options struct {
	DestDir         string
	Command         string
	EnableDocker    bool
	EnableToolchain bool
	CmdOptions      Overrides
}

// Selection is the generation mode derived from Options.
type Selection int

const (
	SelectDefault Selection = iota
	SelectDockerOnly
	SelectToolchainOnly
)

func (s Selection) String() string {
	switch s {
	case SelectDockerOnly:
		return "docker-only"
	case SelectToolchainOnly:
		return "toolchain-only"
	default:
		return "default"
	}
}

// Select computes the generation mode. The docker override wins over the
// toolchain override, and either override wins over the boolean flags.
func Select(opts Options) Selection {
	switch {
	case opts.CmdOptions.Docker:
		return SelectDockerOnly
	case opts.CmdOptions.Toolchain:
		return SelectToolchainOnly
	default:
		return SelectDefault
	}
}

type groupSwitch struct {
	group   Group
	enabled bool
}

func switches(opts Options) []groupSwitch {
	switch Select(opts) {
	case SelectDockerOnly:
		return []groupSwitch{{group: Docker, enabled: true}}
	case SelectToolchainOnly:
		return []groupSwitch{{group: Toolchain, enabled: true}}
	default:
		return []groupSwitch{
			{group: Base, enabled: true},
			{group: Docker, enabled: opts.EnableDocker},
			{group: Toolchain, enabled: opts.EnableToolchain},
		}
	}
}

// Entry is a single planned copy.
type Entry struct {
	Group  GroupName
	Path   string
	Source string
	Dest   string
}

// Plan lists the copies Generate performs for opts, in order.
func Plan(opts Options) []Entry {
	var entries []Entry
	for _, sw := range switches(opts) {
		if !sw.enabled {
			continue
		}
		for _, rel := range sw.group.paths {
			entries = append(entries, Entry{
				Group:  sw.group.Name,
				Path:   rel,
				Source: TemplatePath(rel),
				Dest:   filepath.Join(opts.DestDir, filepath.FromSlash(rel)),
			})
		}
	}
	return entries
}

// TemplatePath returns the asset path used as the copy source for rel.
func TemplatePath(rel string) string {
	return path.Join(TemplateRoot, rel)
}

// CopyFunc materializes the asset at src into dest.
type CopyFunc func(src, dest string) error

// Generate invokes copyFn once per selected file. The first copy error stops
// generation and is returned as-is.
func Generate(opts Options, copyFn CopyFunc) error {
	for _, entry := range Plan(opts) {
		if err := copyFn(entry.Source, entry.Dest); err != nil {
			return err
		}
	}
	return nil
}
