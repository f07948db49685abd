// Where: cli/internal/version/version.go
// What: Version information retrieval.
// Why: Report a release version or the VCS revision the binary was built from.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Version is set at link time for release builds (-ldflags "-X ...version.Version=v1.2.3").
var Version = ""

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the release version when set, otherwise the short VCS
// revision (suffixed with "(dirty)" for modified trees), otherwise "dev".
func GetVersion() string {
	if v := strings.TrimSpace(Version); v != "" {
		return v
	}
	info, ok := readBuildInfo()
	if !ok {
		return "dev"
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
