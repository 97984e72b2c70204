package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SettingsFilename is the optional tool-settings file. It configures
// presentation concerns only and never influences the build configuration.
const SettingsFilename = ".crate.yaml"

// Settings holds CLI presentation preferences.
type Settings struct {
	// Progress selects the progress renderer: "fancy", "plain" or "quiet".
	Progress string `yaml:"progress"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	return Settings{Progress: "fancy", LogLevel: "info"}
}

// LoadSettings reads the settings file from the project root. A missing
// file yields the defaults; a malformed one is an error.
func LoadSettings(root string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(filepath.Join(root, SettingsFilename)) //nolint:gosec // project-local path
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, zerr.Wrap(err, "failed to read settings file")
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, zerr.Wrap(err, "failed to parse settings file")
	}
	if s.Progress == "" {
		s.Progress = "fancy"
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	return s, nil
}
