package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// VersionTemplate returns the text printed by --version, including build information.
func VersionTemplate(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", name, Version)
	fmt.Fprintf(&b, "  go:     %s\n", runtime.Version())
	fmt.Fprintf(&b, "  os:     %s/%s\n", runtime.GOOS, runtime.GOARCH)

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				fmt.Fprintf(&b, "  commit: %s\n", setting.Value)
			}
			if setting.Key == "vcs.time" {
				fmt.Fprintf(&b, "  built:  %s\n", setting.Value)
			}
		}
	}

	return b.String()
}
