package telemetry

import (
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
)

var _ ports.ProgressSink = (*NoopSink)(nil)

// NoopSink discards all progress events. Used in tests and with --quiet.
type NoopSink struct{}

// NewNoopSink creates a NoopSink.
func NewNoopSink() *NoopSink {
	return &NoopSink{}
}

// BuildEvent does nothing.
func (s *NoopSink) BuildEvent(_ domain.BuildProgressEvent) {}

// ArchiveEvent does nothing.
func (s *NoopSink) ArchiveEvent(_ domain.ArchiveProgressEvent) {}
