package pm

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// readPackageManagerField extracts the packageManager declaration from the
// project manifest. Malformed or missing manifests yield an empty string.
func readPackageManagerField(root string) string {
	data, err := os.ReadFile(filepath.Join(root, "package.json")) //nolint:gosec // project-local path
	if err != nil {
		return ""
	}
	var dto struct {
		PackageManager string `json:"packageManager"`
	}
	if err := json.Unmarshal(data, &dto); err != nil {
		return ""
	}
	return dto.PackageManager
}
