// Where: cli/internal/domain/template/types.go
// What: Template data for generated deployment files.
// Why: Keep the values substituted into manifests and pipelines in one place.
package template

import (
	"strings"
	"unicode"
)

const (
	DefaultCommand     = "bluemix"
	DefaultMemory      = "256M"
	DefaultInstances   = 1
	DefaultDomain      = "mybluemix.net"
	DefaultDiskQuota   = "1G"
	DefaultRegion      = "us-south"
	DefaultNodeVersion = "18"
	DefaultAppName     = "app"
)

// Data holds the values available to every template.
type Data struct {
	AppName         string
	Command         string
	Memory          string
	Instances       int
	Domain          string
	Host            string
	Region          string
	DiskQuota       string
	NodeVersion     string
	EnableDocker    bool
	EnableToolchain bool
}

// DefaultData returns Data populated with the generator defaults.
func DefaultData() Data {
	return Data{
		AppName:     DefaultAppName,
		Command:     DefaultCommand,
		Memory:      DefaultMemory,
		Instances:   DefaultInstances,
		Domain:      DefaultDomain,
		Host:        HostName(DefaultAppName),
		Region:      DefaultRegion,
		DiskQuota:   DefaultDiskQuota,
		NodeVersion: DefaultNodeVersion,
	}
}

// Normalize fills blank fields from the defaults and derives Host from AppName.
func (d Data) Normalize() Data {
	defaults := DefaultData()
	d.AppName = orDefault(d.AppName, defaults.AppName)
	d.Command = orDefault(d.Command, defaults.Command)
	d.Memory = orDefault(d.Memory, defaults.Memory)
	d.Domain = orDefault(d.Domain, defaults.Domain)
	d.Region = orDefault(d.Region, defaults.Region)
	d.DiskQuota = orDefault(d.DiskQuota, defaults.DiskQuota)
	d.NodeVersion = orDefault(d.NodeVersion, defaults.NodeVersion)
	if d.Instances <= 0 {
		d.Instances = defaults.Instances
	}
	if strings.TrimSpace(d.Host) == "" {
		d.Host = HostName(d.AppName)
	}
	return d
}

// HostName converts an application name into a route host label.
func HostName(appName string) string {
	lower := strings.ToLower(strings.TrimSpace(appName))
	var b strings.Builder
	lastDash := false
	for _, r := range lower {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash && b.Len() > 0 {
			b.WriteByte('-')
			lastDash = true
		}
	}
	host := strings.TrimSuffix(b.String(), "-")
	if host == "" {
		return DefaultAppName
	}
	return host
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
