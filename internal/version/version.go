// Package version holds build metadata set through -ldflags by the mage Build
// target.
package version

import "fmt"

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String formats the build metadata for the usage banner.
func String() string {
	if CommitHash == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (%s, %s)", Version, CommitHash, BuildDate)
}
