// Package version exposes the build version of termninja.
package version

// Version is overridden at build time with
// -ldflags "-X github.com/termninja/termninja/pkg/version.Version=v1.2.3"
var Version = "dev"

// GetVersion returns the version string of the current build.
func GetVersion() string {
	return Version
}
