package version

import "fmt"

// Set via -ldflags "-X github.com/philipparndt/goview/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func GetVersion() string {
	return Version
}

// GetFullVersion appends commit and build date for release builds
func GetFullVersion() string {
	if Version == "dev" {
		return "goview dev"
	}
	return fmt.Sprintf("goview %s (%s, built %s)", Version, GitCommit, BuildDate)
}
