// Package configpaths resolves candidate configuration file locations for
// the hidforge CLI.
package configpaths

import (
	"os"
	"path/filepath"
)

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "hidforge"), nil
}

// ConfigCandidatePaths returns config file candidates grouped by format,
// lowest priority first. An explicit path (from --config or the
// environment) is appended last so it wins over the defaults.
func ConfigCandidatePaths(explicit string) (jsonPaths, yamlPaths, tomlPaths []string) {
	var dirs []string
	if dir, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	for _, dir := range dirs {
		jsonPaths = append(jsonPaths, filepath.Join(dir, "hidforge.json"))
		yamlPaths = append(yamlPaths,
			filepath.Join(dir, "hidforge.yaml"),
			filepath.Join(dir, "hidforge.yml"))
		tomlPaths = append(tomlPaths, filepath.Join(dir, "hidforge.toml"))
	}
	if explicit != "" {
		switch filepath.Ext(explicit) {
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, explicit)
		case ".toml":
			tomlPaths = append(tomlPaths, explicit)
		default:
			jsonPaths = append(jsonPaths, explicit)
		}
	}
	return jsonPaths, yamlPaths, tomlPaths
}
