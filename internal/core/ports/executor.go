// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/crate/internal/core/domain"
)

// BuildRunner executes the resolved build sequence as subprocesses.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type BuildRunner interface {
	// Execute runs the pre-build hooks, the build command, and the
	// post-build hooks, forwarding progress to sink. The returned
	// BuildResult is always populated with the output captured so far,
	// even on failure. Hook failures carry a *domain.PhaseError.
	Execute(ctx context.Context, root string, cfg domain.BuildConfig, sink ProgressSink) (domain.BuildResult, error)
}
