// Package telemetry provides progress sink adapters. The core emits
// progress events without assuming how they are rendered; these adapters
// are the renderers.
package telemetry

import (
	"fmt"
	"io"
	"sync"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
)

var _ ports.ProgressSink = (*PlainSink)(nil)

// archiveReportEvery throttles plain archive progress to one line per
// batch of entries.
const archiveReportEvery = 100

// PlainSink renders progress as plain lines: phase transitions are
// announced, build output chunks pass through verbatim.
type PlainSink struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	// lastReported is the entry count at the last archive progress line.
	lastReported int
}

// NewPlainSink creates a PlainSink writing to the given streams.
func NewPlainSink(stdout, stderr io.Writer) *PlainSink {
	return &PlainSink{stdout: stdout, stderr: stderr}
}

// BuildEvent renders one build progress event.
func (s *PlainSink) BuildEvent(ev domain.BuildProgressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Kind {
	case domain.BuildEventRunning:
		_, _ = fmt.Fprintf(s.stdout, "[%s] started\n", ev.Phase)
	case domain.BuildEventComplete:
		_, _ = fmt.Fprintf(s.stdout, "[%s] finished\n", ev.Phase)
	case domain.BuildEventOutputChunk:
		_, _ = io.WriteString(s.stdout, ev.Chunk)
	case domain.BuildEventErrorChunk:
		_, _ = io.WriteString(s.stderr, ev.Chunk)
	}
}

// ArchiveEvent renders archive progress, throttled by entry count.
func (s *PlainSink) ArchiveEvent(ev domain.ArchiveProgressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ev.EntriesProcessed-s.lastReported < archiveReportEvery {
		return
	}
	s.lastReported = ev.EntriesProcessed

	if ev.BytesTotal > 0 {
		_, _ = fmt.Fprintf(s.stdout, "[archive] %d entries, %d/%d bytes\n",
			ev.EntriesProcessed, ev.BytesProcessed, ev.BytesTotal)
		return
	}
	_, _ = fmt.Fprintf(s.stdout, "[archive] %d entries, %d bytes\n",
		ev.EntriesProcessed, ev.BytesProcessed)
}
