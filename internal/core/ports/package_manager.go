package ports

import "go.trai.ch/crate/internal/core/domain"

// PackageManagers detects the script runner in use and maps it to argv
// forms for script invocation. The mapping is a static table, not inferred.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManagers interface {
	// Detect resolves the package manager for the project root, falling
	// back to npm when no evidence is found.
	Detect(root string) domain.PackageManagerKind

	// RunScript returns the argv that runs the named manifest script.
	RunScript(kind domain.PackageManagerKind, script string) []string

	// ExecTool returns the argv that invokes a dependency-local tool
	// directly (npx-style), bypassing the script table.
	ExecTool(kind domain.PackageManagerKind, tool string, args ...string) []string
}
