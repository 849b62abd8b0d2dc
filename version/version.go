// Package version identifies the codedom build stamped into generated file
// headers. Release builds set Version and Commit with -ldflags; binaries
// built by go install fall back to the module and VCS data the toolchain
// embeds.
package version

import (
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at build time via ldflags.
var (
	Version = "dev"
	Commit  = ""
)

// Info identifies one build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
}

// Get returns the running binary's build identity.
func Get() Info {
	return fromBuildInfo(debug.ReadBuildInfo())
}

func fromBuildInfo(bi *debug.BuildInfo, ok bool) Info {
	info := Info{Version: Version, Commit: Commit, GoVersion: runtime.Version()}
	if !ok || bi == nil {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// Stamp is the header form of the build: the version without a leading v,
// then the short commit and a dirty mark for uncommitted trees.
//
//	Info{Version: "v1.2.0", Commit: "0123456789ab", Modified: true}.Stamp() == "1.2.0+0123456.dirty"
func (i Info) Stamp() string {
	s := strings.TrimPrefix(i.Version, "v")
	if i.Commit == "" {
		return s
	}
	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	s += "+" + commit
	if i.Modified {
		s += ".dirty"
	}
	return s
}

func (i Info) String() string {
	return "codedom " + i.Stamp() + " (" + i.GoVersion + ")"
}
