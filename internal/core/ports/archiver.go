package ports

import (
	"context"

	"go.trai.ch/crate/internal/core/domain"
)

// Archiver walks the project tree and produces one compressed artifact.
//
//go:generate go run go.uber.org/mock/mockgen -source=archiver.go -destination=mocks/mock_archiver.go -package=mocks
type Archiver interface {
	// Build materializes the plan. On any I/O failure it removes partial
	// output, including intermediate temporary files, and returns an
	// error wrapping domain.ErrArchive.
	Build(ctx context.Context, plan domain.ArchivePlan, sink ProgressSink) (domain.Artifact, error)
}
