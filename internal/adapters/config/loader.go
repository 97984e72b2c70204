// Package config implements the build configuration resolver: built-in
// defaults keyed by project type merged with the optional project-local
// override file.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/zerr"
)

// OverrideFilename is the fixed project-relative override file.
const OverrideFilename = "crate.json"

// OverridePath returns the override file location for a project root.
func OverridePath(root string) string {
	return filepath.Join(root, OverrideFilename)
}

// loadOverride reads the override file. A missing file yields a zero config
// and false; a malformed file is a real error, user-supplied configuration
// is never silently discarded.
func loadOverride(root string) (domain.BuildConfig, bool, error) {
	data, err := os.ReadFile(OverridePath(root)) //nolint:gosec // project-local path
	if err != nil {
		if os.IsNotExist(err) {
			return domain.BuildConfig{}, false, nil
		}
		return domain.BuildConfig{}, false, zerr.Wrap(err, "failed to read override file")
	}

	var cfg domain.BuildConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return domain.BuildConfig{}, false, zerr.With(
			zerr.Wrap(err, "failed to parse override file"),
			"path", OverridePath(root),
		)
	}
	return cfg, true, nil
}
