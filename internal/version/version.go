// Package version exposes the build metadata stamped into the binary.
package version

import (
	"fmt"
	"runtime"
)

// Overridden at build time via -ldflags; a plain `go build` produces a
// dev binary.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info is a snapshot of the build metadata plus the toolchain and platform
// that produced the binary.
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
	Platform  string
}

// GetInfo collects the current build metadata.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders a one-line description with the commit shortened to eight
// characters.
func (i Info) String() string {
	commit := i.Commit
	if len(commit) > 8 {
		commit = commit[:8]
	}
	return fmt.Sprintf("wmsctl %s (%s) built %s with %s for %s",
		i.Version, commit, i.Date, i.GoVersion, i.Platform)
}

// Short returns just the version number.
func (i Info) Short() string {
	return i.Version
}
