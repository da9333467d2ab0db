// Package version carries build metadata stamped via -ldflags.
package version

var (
	// Version is the modkit release version.
	Version = "0.3.0"
	// GitCommit is the commit the binary was built from.
	GitCommit = "unknown"
)
