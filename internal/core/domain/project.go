// Package domain contains the core types for the packaging pipeline.
package domain

// ProjectType classifies the kind of project being packaged.
// It is recomputed from filesystem evidence on every run and never persisted.
type ProjectType string

const (
	// ProjectTypeNext is a Next.js application.
	ProjectTypeNext ProjectType = "next"
	// ProjectTypeExpress is an Express server.
	ProjectTypeExpress ProjectType = "express"
	// ProjectTypeNode is a plain Node.js project.
	ProjectTypeNode ProjectType = "node"
	// ProjectTypeUnknown is anything the inspector could not classify.
	ProjectTypeUnknown ProjectType = "unknown"
)

// String returns the string representation of the ProjectType.
func (t ProjectType) String() string {
	return string(t)
}

// PackageManagerKind identifies the dependency/script runner in use.
type PackageManagerKind string

const (
	// PackageManagerNpm is npm.
	PackageManagerNpm PackageManagerKind = "npm"
	// PackageManagerPnpm is pnpm.
	PackageManagerPnpm PackageManagerKind = "pnpm"
	// PackageManagerYarn is yarn.
	PackageManagerYarn PackageManagerKind = "yarn"
	// PackageManagerBun is bun.
	PackageManagerBun PackageManagerKind = "bun"
)

// String returns the string representation of the PackageManagerKind.
func (k PackageManagerKind) String() string {
	return string(k)
}

// Manifest holds the fields of a project manifest (package.json) that the
// detection logic consults. Absent fields stay at their zero values.
type Manifest struct {
	Name            string
	Version         string
	Main            string
	Type            string
	PackageManager  string
	Scripts         map[string]string
	Dependencies    map[string]string
	DevDependencies map[string]string
	Engines         map[string]string
}

// HasScript reports whether the manifest declares the named script.
func (m *Manifest) HasScript(name string) bool {
	if m == nil {
		return false
	}
	_, ok := m.Scripts[name]
	return ok
}

// HasDependency reports whether name appears in dependencies or devDependencies.
func (m *Manifest) HasDependency(name string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.Dependencies[name]; ok {
		return true
	}
	_, ok := m.DevDependencies[name]
	return ok
}

// HasAnyDependency reports whether the manifest declares at least one dependency.
func (m *Manifest) HasAnyDependency() bool {
	if m == nil {
		return false
	}
	return len(m.Dependencies) > 0 || len(m.DevDependencies) > 0
}

// ProjectInfo is the result of one inspection pass over a project root.
// It is immutable for the duration of a pipeline run.
type ProjectInfo struct {
	Root       string
	Type       ProjectType
	TypeScript bool
	Manifest   *Manifest
}

// Name returns the project name declared in the manifest, if any.
func (p ProjectInfo) Name() string {
	if p.Manifest == nil {
		return ""
	}
	return p.Manifest.Name
}

// Version returns the project version declared in the manifest, if any.
func (p ProjectInfo) Version() string {
	if p.Manifest == nil {
		return ""
	}
	return p.Manifest.Version
}
