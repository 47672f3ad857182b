// Package version exposes build metadata for the convert binary.
package version

// Set at build time via -ldflags "-X github.com/dkoosis/convert/internal/version.Version=...".
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
