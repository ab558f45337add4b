package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	defer func() { Version, Commit, Date = origVersion, origCommit, origDate }()

	Version = "1.2.3"
	Commit = "abc123def456"
	Date = "2026-01-01T12:00:00Z"

	info := GetInfo()
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc123def456", info.Commit)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, "1.2.3", info.Short())
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "1.2.3",
		Commit:    "abc123def456",
		Date:      "2026-01-01T12:00:00Z",
		GoVersion: "go1.24",
		Platform:  "linux/amd64",
	}

	s := info.String()
	assert.Contains(t, s, "wmsctl 1.2.3")
	assert.Contains(t, s, "abc123de", "commit is shortened")
	assert.NotContains(t, s, "abc123def456")
}

func TestInfoStringShortCommit(t *testing.T) {
	info := Info{Version: "dev", Commit: "abc", Date: "unknown"}
	assert.Contains(t, info.String(), "(abc)")
}
