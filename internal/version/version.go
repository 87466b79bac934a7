package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are populated at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns a human-friendly version string that surfaces build metadata.
// Values not set through -ldflags fall back to the module build info, so
// `go install` builds still report something useful.
func Info() string {
	version, commit, date := resolve(Version, Commit, Date)
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

// UserAgent identifies curtaincall to remote APIs.
func UserAgent() string {
	version, _, _ := resolve(Version, Commit, Date)
	return "curtaincall/" + version
}

func resolve(version, commit, date string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit, date
	}
	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if commit == "none" && setting.Value != "" {
				commit = shortRevision(setting.Value)
			}
		case "vcs.time":
			if date == "unknown" && setting.Value != "" {
				date = setting.Value
			}
		}
	}
	return version, commit, date
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
