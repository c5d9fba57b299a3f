// Package version holds the build version, overridden at link time with
// -ldflags "-X github.com/battlesnakeio/solo/version.Version=...".
package version

// Version is the current release.
var Version = "0.1.0-dev"
