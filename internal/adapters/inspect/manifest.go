package inspect

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/crate/internal/core/domain"
)

// ManifestFilename is the project manifest consulted by detection logic.
const ManifestFilename = "package.json"

// manifestDTO mirrors the manifest fields the pipeline reads.
type manifestDTO struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Main            string            `json:"main"`
	Type            string            `json:"type"`
	PackageManager  string            `json:"packageManager"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Engines         map[string]string `json:"engines"`
}

// readManifest parses the project manifest. A missing or malformed file
// yields nil; detection degrades to defaults instead of failing.
func readManifest(root string) *domain.Manifest {
	data, err := os.ReadFile(filepath.Join(root, ManifestFilename)) //nolint:gosec // project-local path
	if err != nil {
		return nil
	}

	var dto manifestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil
	}

	return &domain.Manifest{
		Name:            dto.Name,
		Version:         dto.Version,
		Main:            dto.Main,
		Type:            dto.Type,
		PackageManager:  dto.PackageManager,
		Scripts:         dto.Scripts,
		Dependencies:    dto.Dependencies,
		DevDependencies: dto.DevDependencies,
		Engines:         dto.Engines,
	}
}
