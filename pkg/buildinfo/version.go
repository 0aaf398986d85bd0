// Package buildinfo exposes version metadata stamped at build time.
package buildinfo

import "fmt"

// These variables are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/fitlab/tubfit/pkg/buildinfo.Version=v1.0.0 ..."
var (
	// Version is the semantic version of the build.
	Version = "dev"

	// Commit is the git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns a human-readable version string.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
