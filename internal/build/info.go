// Package build carries version metadata stamped in at link time.
package build

import (
	"fmt"
	"runtime"
)

// Set via -ldflags "-X github.com/shaharia-lab/salon-notify/internal/build.Version=...".
var (
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

// Info is the build metadata reported by the health endpoint and the
// version command.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// Current returns the metadata of the running binary.
func Current() Info {
	return Info{
		Version:   Version,
		Commit:    CommitSHA,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// String returns the one-line form printed by "salon-notify version".
func (i Info) String() string {
	return fmt.Sprintf("salon-notify %s (commit %s, built %s, %s)", i.Version, i.Commit, i.BuildDate, i.GoVersion)
}
