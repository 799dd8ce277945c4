package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// These variables are set during build time
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// BuildInfo contains build and platform information
type BuildInfo struct {
	Version   string `json:"version"`
	SemVer    string `json:"semver"`
	BuildDate string `json:"build_date"`
	GitCommit string `json:"git_commit"`

	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`

	// Module dependencies compiled into the binary
	Deps []Module `json:"deps"`
}

// Module represents a Go module dependency
type Module struct {
	Path    string `json:"path"`
	Version string `json:"version"`
}

// GetBuildInfo returns the build information of the running binary
func GetBuildInfo() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		SemVer:    strings.Split(Version, "-")[0],
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range buildInfo.Deps {
			info.Deps = append(info.Deps, Module{
				Path:    dep.Path,
				Version: dep.Version,
			})
		}
	}

	return info
}

// ShortVersion returns a one-line version string
func ShortVersion() string {
	return fmt.Sprintf("Glyphtree %s (%s, %s)", Version, GitCommit, BuildDate)
}

// FullVersion returns a formatted string with complete version information
func FullVersion() string {
	info := GetBuildInfo()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Glyphtree %s\n\n", info.Version))

	b.WriteString(fmt.Sprintf("  Semantic Ver: %s\n", info.SemVer))
	b.WriteString(fmt.Sprintf("  Build Date:   %s\n", info.BuildDate))
	b.WriteString(fmt.Sprintf("  Commit:       %s\n", info.GitCommit))
	b.WriteString(fmt.Sprintf("  Go Version:   %s\n", info.GoVersion))
	b.WriteString(fmt.Sprintf("  Platform:     %s\n", info.Platform))

	if len(info.Deps) > 0 {
		b.WriteString("\nDependencies:\n")
		for _, dep := range info.Deps {
			b.WriteString(fmt.Sprintf("  - %s@%s\n", dep.Path, dep.Version))
		}
	}

	return b.String()
}
