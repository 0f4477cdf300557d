package app

import "fmt"

// Build metadata, injected with
// -ldflags "-X github.com/mgvaldez/clinicajuridica-backend/internal/app.Version=…".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build metadata for startup logs and the
// health endpoint.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
