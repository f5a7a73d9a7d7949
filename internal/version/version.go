// Package version exposes build metadata injected at link time.
package version

// Build metadata, overridden with -ldflags "-X ...".
//
//nolint:gochecknoglobals // Set by the linker.
var (
	Version   = "0.1.0"
	Commit    = "none"
	BuildTime = "unknown"
)

// Short returns the bare version string.
func Short() string {
	return Version
}

// Full returns the version together with the commit and build time.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
