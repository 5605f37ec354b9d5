package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultConfigDir returns the platform-specific configuration directory for
// bogen.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, "bogen"), nil
		}
		return "", errors.New("AppData not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "bogen"), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", "bogen"), nil
		}
		return "", errors.New("HOME not set")
	}
}

// EnsureDir ensures the directory for a given file path exists.
func EnsureDir(filePath string) error {
	dir := filepath.Dir(filePath)
	return os.MkdirAll(dir, 0o755)
}

// ConfigCandidatePaths builds candidate paths for config files per format.
// If userPath is provided, it is prioritized and routed to the matching
// loader by extension.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(slice *[]string, p string) { *slice = append(*slice, p) }

	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".json":
			add(&jsonPaths, userPath)
		case ".yaml", ".yml":
			add(&yamlPaths, userPath)
		case ".toml":
			add(&tomlPaths, userPath)
		default:
			add(&jsonPaths, userPath)
		}
	}

	// Working directory candidates
	wd, _ := os.Getwd()
	for _, base := range []string{"bogen", "config"} {
		add(&jsonPaths, filepath.Join(wd, base+".json"))
		add(&yamlPaths, filepath.Join(wd, base+".yaml"))
		add(&yamlPaths, filepath.Join(wd, base+".yml"))
		add(&tomlPaths, filepath.Join(wd, base+".toml"))
	}

	// Config home
	if dir, err := DefaultConfigDir(); err == nil {
		add(&jsonPaths, filepath.Join(dir, "config.json"))
		add(&yamlPaths, filepath.Join(dir, "config.yaml"))
		add(&yamlPaths, filepath.Join(dir, "config.yml"))
		add(&tomlPaths, filepath.Join(dir, "config.toml"))
	}

	// System-wide (unix)
	if runtime.GOOS != "windows" {
		add(&jsonPaths, filepath.Join("/etc/bogen", "config.json"))
		add(&yamlPaths, filepath.Join("/etc/bogen", "config.yaml"))
		add(&yamlPaths, filepath.Join("/etc/bogen", "config.yml"))
		add(&tomlPaths, filepath.Join("/etc/bogen", "config.toml"))
	}

	return
}
