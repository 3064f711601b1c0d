// Package version holds build metadata injected at link time.
package version

import (
	"runtime"
	"runtime/debug"
)

// Version is set with -ldflags "-X github.com/cloudposse/ticktock/pkg/version.Version=v1.2.3".
var Version = "dev"

// Commit is the VCS revision the binary was built from, when known.
var Commit = ""

// Info describes the running binary.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit,omitempty" yaml:"commit,omitempty"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	OS        string `json:"os" yaml:"os"`
	Arch      string `json:"arch" yaml:"arch"`
}

// Get returns the build information. The commit falls back to the revision
// recorded by the Go toolchain.
func Get() Info {
	commit := Commit
	if commit == "" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					commit = s.Value
					break
				}
			}
		}
	}
	return Info{
		Version:   Version,
		Commit:    commit,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}
