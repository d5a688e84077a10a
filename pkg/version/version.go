package version

import (
	"fmt"
	"runtime"
)

// Version is set at build time via -ldflags "-X github.com/cloudposse/alp/pkg/version.Version=v1.2.3".
var Version = "test"

// Info describes the running binary.
type Info struct {
	Version string `json:"version"`
	Go      string `json:"go"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

// Current returns the build information of the running binary.
func Current() Info {
	return Info{
		Version: Version,
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("alp %s (%s %s/%s)", i.Version, i.Go, i.OS, i.Arch)
}
