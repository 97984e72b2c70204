// Package pm implements the package manager resolver adapter.
package pm

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
)

var _ ports.PackageManagers = (*Resolver)(nil)

// detectionOrder is the fixed lockfile and binary probe priority.
var detectionOrder = []domain.PackageManagerKind{
	domain.PackageManagerPnpm,
	domain.PackageManagerYarn,
	domain.PackageManagerBun,
	domain.PackageManagerNpm,
}

// lockfiles maps each manager to the lockfile names that identify it.
var lockfiles = map[domain.PackageManagerKind][]string{
	domain.PackageManagerPnpm: {"pnpm-lock.yaml"},
	domain.PackageManagerYarn: {"yarn.lock"},
	domain.PackageManagerBun:  {"bun.lockb", "bun.lock"},
	domain.PackageManagerNpm:  {"package-lock.json"},
}

// Resolver implements ports.PackageManagers. The lookPath hook exists so
// tests can control binary probing.
type Resolver struct {
	lookPath func(string) (string, error)
}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{lookPath: exec.LookPath}
}

// Detect resolves the package manager: lockfile presence in fixed priority,
// then the manifest packageManager field prefix, then the first invocable
// manager binary, then npm. Probe errors are treated as "not available".
func (r *Resolver) Detect(root string) domain.PackageManagerKind {
	for _, kind := range detectionOrder {
		for _, name := range lockfiles[kind] {
			if _, err := os.Stat(filepath.Join(root, name)); err == nil {
				return kind
			}
		}
	}

	if kind, ok := manifestPackageManager(root); ok {
		return kind
	}

	for _, kind := range detectionOrder {
		if _, err := r.lookPath(kind.String()); err == nil {
			return kind
		}
	}

	return domain.PackageManagerNpm
}

// manifestPackageManager reads the packageManager field prefix, e.g.
// "pnpm@9.1.0" -> pnpm.
func manifestPackageManager(root string) (domain.PackageManagerKind, bool) {
	m := readPackageManagerField(root)
	if m == "" {
		return "", false
	}
	name, _, _ := strings.Cut(m, "@")
	switch domain.PackageManagerKind(name) {
	case domain.PackageManagerNpm, domain.PackageManagerPnpm, domain.PackageManagerYarn, domain.PackageManagerBun:
		return domain.PackageManagerKind(name), true
	default:
		return "", false
	}
}

// RunScript returns the argv that runs the named manifest script.
func (r *Resolver) RunScript(kind domain.PackageManagerKind, script string) []string {
	switch kind {
	case domain.PackageManagerYarn:
		return []string{"yarn", script}
	case domain.PackageManagerPnpm:
		return []string{"pnpm", "run", script}
	case domain.PackageManagerBun:
		return []string{"bun", "run", script}
	default:
		return []string{"npm", "run", script}
	}
}

// ExecTool returns the argv that invokes a dependency-local tool directly.
func (r *Resolver) ExecTool(kind domain.PackageManagerKind, tool string, args ...string) []string {
	var argv []string
	switch kind {
	case domain.PackageManagerYarn:
		argv = []string{"yarn", tool}
	case domain.PackageManagerPnpm:
		argv = []string{"pnpm", "exec", tool}
	case domain.PackageManagerBun:
		argv = []string{"bun", "x", tool}
	default:
		argv = []string{"npx", tool}
	}
	return append(argv, args...)
}
