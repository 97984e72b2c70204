package progrock

import (
	"io"
	"sync"

	"github.com/vito/progrock"
)

var _ progrock.Writer = (*Pipe)(nil)

// Pipe is a progrock.Writer whose updates can be read back one at a time.
// It bridges the recording side (the Sink) to a consumer such as the
// terminal progress view.
type Pipe struct {
	updates chan *progrock.StatusUpdate
	// done is closed by Detach when the consumer stops reading, so a
	// blocked writer never wedges the pipeline.
	done chan struct{}

	closeOnce  sync.Once
	detachOnce sync.Once
}

// NewPipe creates a Pipe with a small update buffer so recording does not
// block on a slow consumer during bursts.
func NewPipe() *Pipe {
	return &Pipe{
		updates: make(chan *progrock.StatusUpdate, 64),
		done:    make(chan struct{}),
	}
}

// WriteStatus forwards one update to the reader. Updates are discarded
// once the consumer has detached.
func (p *Pipe) WriteStatus(status *progrock.StatusUpdate) error {
	select {
	case <-p.done:
		return nil
	default:
	}
	select {
	case p.updates <- status:
	case <-p.done:
	}
	return nil
}

// Read returns the next update, or io.EOF after Close.
func (p *Pipe) Read() (*progrock.StatusUpdate, error) {
	update, ok := <-p.updates
	if !ok {
		return nil, io.EOF
	}
	return update, nil
}

// Detach marks the consumer as gone. Pending and future writes are
// dropped instead of blocking on the full buffer.
func (p *Pipe) Detach() {
	p.detachOnce.Do(func() { close(p.done) })
}

// Close ends the stream. Read returns io.EOF once buffered updates are
// drained.
func (p *Pipe) Close() error {
	p.closeOnce.Do(func() { close(p.updates) })
	return nil
}
