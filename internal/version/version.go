package version

// Version information for the pyproject-fmt CLI.
// These variables can be overridden at build time via -ldflags:
//
//	-X pyprojectfmt/internal/version.Version=1.2.3
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Info is the build metadata in one value.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

// Get returns the current build metadata; an empty Version reads "dev".
func Get() Info {
	v := Version
	if v == "" {
		v = "dev"
	}
	return Info{Version: v, GitCommit: GitCommit, BuildDate: BuildDate}
}

// CacheTag identifies the formatter build in cache keys. Dev builds include
// the commit so that rebuilt binaries do not trust stale records.
func CacheTag() string {
	info := Get()
	if info.GitCommit == "" {
		return info.Version
	}
	return info.Version + "+" + info.GitCommit
}
