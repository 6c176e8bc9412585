// SPDX-License-Identifier: MIT
//
// Package build provides build metadata for the binary. The application
// name, build timestamp, Git commit hash, and semantic version are
// embedded at compile time using linker flags, for example:
//
//	go build -ldflags "-X ratectl/pkg/build.buildVersion=0.2.0"
//
// Development builds without ldflags fall back to placeholder values.
package build

// Info holds the build information for the running binary.
type Info struct {
	Name    string // Application name
	Time    string // Build timestamp
	Commit  string // Git commit hash
	Version string // Semantic version
}

// Package-level variables populated by -ldflags during compilation.
var (
	buildName    string
	buildTime    string
	buildCommit  string
	buildVersion string
)

// GetInfo returns the build information, substituting development
// placeholders for any flag the build did not provide.
func GetInfo() Info {
	info := Info{
		Name:    buildName,
		Time:    buildTime,
		Commit:  buildCommit,
		Version: buildVersion,
	}
	if info.Name == "" {
		info.Name = "ratectl"
	}
	if info.Time == "" {
		info.Time = "unknown"
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	return info
}
