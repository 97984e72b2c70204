package ports

import "go.trai.ch/crate/internal/core/domain"

// ConfigResolver merges built-in defaults with the optional project-local
// override file into one effective BuildConfig per run.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_resolver.go -destination=mocks/mock_config_resolver.go -package=mocks
type ConfigResolver interface {
	// Resolve computes the effective config for the inspected project and
	// detected package manager. A missing override file is not an error.
	Resolve(info domain.ProjectInfo, kind domain.PackageManagerKind) (domain.BuildConfig, error)

	// Validate checks the merged config and returns human-readable
	// messages; an empty list means the config is valid.
	Validate(root string, cfg domain.BuildConfig) []string

	// WriteDefault seeds the override file with type-specific values.
	// It refuses to overwrite an existing file unless overwrite is set,
	// returning domain.ErrOverrideExists.
	WriteDefault(root string, t domain.ProjectType, kind domain.PackageManagerKind, overwrite bool) (string, error)
}
