package ports

import "go.trai.ch/crate/internal/core/domain"

// OutputValidator scans captured build output and the filesystem for
// failure signatures and expected success indicators.
//
//go:generate go run go.uber.org/mock/mockgen -source=validator.go -destination=mocks/mock_validator.go -package=mocks
type OutputValidator interface {
	// Validate scans output line-by-line against the fixed signature
	// table for the project type, recording the first matching line per
	// pattern, and checks the configured success indicators on disk.
	Validate(root string, t domain.ProjectType, cfg domain.BuildConfig, output string) domain.ValidationReport
}
