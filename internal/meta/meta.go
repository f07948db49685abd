// Where: cli/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep the binary name and config filenames in one place.
package meta

const (
	AppName = "bmx"

	// ConfigFile is the per-project configuration file name.
	ConfigFile = "bmx.yaml"
	// EnvFile is loaded from the working directory when present.
	EnvFile = ".env"
)
