package ports

import "go.trai.ch/crate/internal/core/domain"

// ProgressSink consumes the pipeline's progress streams. The core makes no
// assumption about how progress is rendered.
//
//go:generate go run go.uber.org/mock/mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type ProgressSink interface {
	// BuildEvent receives one element of the ordered build progress stream.
	BuildEvent(ev domain.BuildProgressEvent)
	// ArchiveEvent receives entry/byte progress during archiving.
	ArchiveEvent(ev domain.ArchiveProgressEvent)
}
