package buildinfo

import "runtime/debug"

// Set via ldflags at release time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

// Info is the resolved build metadata, suitable for JSON output.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// Get resolves the build metadata, preferring ldflags values and
// falling back to the toolchain's embedded build info.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.GoVersion == "unknown" {
		info.GoVersion = bi.GoVersion
	}
	if info.Commit == "unknown" {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				info.Commit = shortCommit(s.Value)
			}
		}
	}
	return info
}

// String renders a one-line version banner.
func String() string {
	info := Get()
	return info.Version + " (" + info.Commit + ") built at " + info.BuildTime
}

func shortCommit(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
