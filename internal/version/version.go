// Package version exposes build information for the praxis binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at release time via
// -ldflags "-X github.com/praxis-cli/praxis/internal/version.Version=... -X .../version.Commit=...".
// Development builds leave them empty and fall back to the module build
// metadata the toolchain embeds.
var (
	Version string
	Commit  string
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Current resolves the binary's version info.
func Current() Info {
	return Info{
		Version:   resolveVersion(),
		Commit:    resolveCommit(),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func resolveVersion() string {
	if Version != "" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}

	return "dev"
}

func resolveCommit() string {
	if Commit != "" {
		return Commit
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}

	return ""
}

// Short is the one-line form shown by `praxis version --short`.
func (i Info) Short() string {
	if len(i.Commit) >= 7 {
		return fmt.Sprintf("%s (%s)", i.Version, i.Commit[:7])
	}
	return i.Version
}

// String renders the multi-line text form of `praxis version`.
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "praxis %s\n", i.Version)
	if i.Commit != "" {
		fmt.Fprintf(&b, "commit: %s\n", i.Commit)
	}
	fmt.Fprintf(&b, "go: %s\n", i.GoVersion)
	fmt.Fprintf(&b, "platform: %s", i.Platform)
	return b.String()
}
