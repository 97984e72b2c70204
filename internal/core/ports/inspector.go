package ports

import "go.trai.ch/crate/internal/core/domain"

// Inspector classifies a project from filesystem evidence.
//
//go:generate go run go.uber.org/mock/mockgen -source=inspector.go -destination=mocks/mock_inspector.go -package=mocks
type Inspector interface {
	// Inspect probes the project root and returns its classification and
	// manifest metadata. Probing failures (missing or malformed manifest)
	// are recovered locally; Inspect never returns an error.
	Inspect(root string) domain.ProjectInfo
}
