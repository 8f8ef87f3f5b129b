// Package version exposes the build version of the ohmoracle binary.
package version

// Version is the semantic version of the build. It is overridden at release
// time via -ldflags "-X github.com/ohmtools/ohmoracle/pkg/version.Version=...".
var Version = "dev" //nolint:gochecknoglobals // set by the linker at build time

// GetVersion returns the version string for the current build.
func GetVersion() string {
	return Version
}
