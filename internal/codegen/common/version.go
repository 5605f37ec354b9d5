package common

import (
	"fmt"
	"strings"
)

// Version is set via ldflags at build time:
// -ldflags "-X github.com/bogentools/bogen/internal/codegen/common.Version=x.y.z"
var Version = ""

// BuildInfo carries build metadata resolved once at process start and passed
// into the command layer explicitly.
type BuildInfo struct {
	Version string
}

// GetVersion returns the version string that was set at build time via
// ldflags. Returns "0.0.1-dev" if Version is empty (development builds only).
func GetVersion() (string, error) {
	if Version == "" {
		return "0.0.1-dev", nil
	}

	version := strings.TrimPrefix(Version, "v")
	baseVersion := strings.SplitN(version, "-", 2)[0]
	if !strings.Contains(baseVersion, ".") {
		return "", fmt.Errorf("invalid version format: %s (expected x.y.z)", Version)
	}

	return version, nil
}
