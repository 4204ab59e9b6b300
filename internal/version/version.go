package version

import (
	"runtime/debug"
	"strings"
)

const (
	defaultModule  = "github.com/hnnsb/kivi"
	defaultVersion = "0.0.1"
)

// buildVersion is set via -ldflags "-X github.com/hnnsb/kivi/internal/version.buildVersion=...".
var buildVersion = ""

// Current returns the version shown in the welcome banner and by `kivi version`.
func Current() string {
	if v := strings.TrimSpace(buildVersion); v != "" {
		return strings.TrimPrefix(v, "v")
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := fromBuildInfo(info); v != "" {
			return v
		}
	}
	return defaultVersion
}

// Module returns the module path from build info when available.
func Module() string {
	info, ok := debug.ReadBuildInfo()
	if ok {
		if path := strings.TrimSpace(info.Main.Path); path != "" {
			return path
		}
	}
	return defaultModule
}

func fromBuildInfo(info *debug.BuildInfo) string {
	if info == nil {
		return ""
	}
	v := strings.TrimSpace(info.Main.Version)
	if v == "" || v == "(devel)" {
		return ""
	}
	v = strings.TrimSuffix(v, "+dirty")
	return strings.TrimPrefix(v, "v")
}
