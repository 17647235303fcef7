// Package version exposes build information for the meta endpoint
package version

// BuildInfo describes the running binary
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information, the variables below are meant to be
// stamped at build time via -ldflags -X
func Info() BuildInfo {
	return BuildInfo{
		Service: "lexicore-api",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
