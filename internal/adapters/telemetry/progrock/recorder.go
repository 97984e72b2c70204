// Package progrock provides the Progrock implementation of the progress
// sink.
package progrock

import (
	"fmt"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
)

var _ ports.ProgressSink = (*Sink)(nil)

// Sink renders pipeline progress as progrock vertices: one vertex per
// build phase plus one for archiving.
type Sink struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu       sync.Mutex
	phases   map[domain.BuildPhase]*progrock.VertexRecorder
	archive  *progrock.VertexRecorder
	lastSize int64
}

// New creates a Sink recording onto a default tape.
func New() *Sink {
	return NewSink(progrock.NewTape())
}

// NewSink creates a Sink recording onto the given writer.
func NewSink(w progrock.Writer) *Sink {
	return &Sink{
		w:      w,
		rec:    progrock.NewRecorder(w),
		phases: make(map[domain.BuildPhase]*progrock.VertexRecorder),
	}
}

// BuildEvent maps one build progress event onto its phase vertex.
func (s *Sink) BuildEvent(ev domain.BuildProgressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.phaseVertex(ev.Phase)
	switch ev.Kind {
	case domain.BuildEventOutputChunk:
		_, _ = fmt.Fprint(v.Stdout(), ev.Chunk)
	case domain.BuildEventErrorChunk:
		_, _ = fmt.Fprint(v.Stderr(), ev.Chunk)
	case domain.BuildEventComplete:
		v.Done(nil)
		delete(s.phases, ev.Phase)
	case domain.BuildEventRunning:
		// Vertex creation above is the start signal.
	}
}

// ArchiveEvent reports byte progress on the archive vertex.
func (s *Sink) ArchiveEvent(ev domain.ArchiveProgressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.archive == nil {
		d := digest.FromString("archive")
		s.archive = s.rec.Vertex(d, "archive")
	}

	delta := ev.BytesProcessed - s.lastSize
	s.lastSize = ev.BytesProcessed
	if delta > 0 {
		_, _ = fmt.Fprintf(s.archive.Stdout(), "%d entries, %d bytes\n",
			ev.EntriesProcessed, ev.BytesProcessed)
	}
}

// Close completes any open vertices and flushes the recording session.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for phase, v := range s.phases {
		v.Done(nil)
		delete(s.phases, phase)
	}
	if s.archive != nil {
		s.archive.Done(nil)
		s.archive = nil
	}

	if c, ok := s.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// phaseVertex returns the vertex for a phase, creating it on first use.
func (s *Sink) phaseVertex(phase domain.BuildPhase) *progrock.VertexRecorder {
	if v, ok := s.phases[phase]; ok {
		return v
	}
	name := string(phase)
	v := s.rec.Vertex(digest.FromString(name), name)
	s.phases[phase] = v
	return v
}
