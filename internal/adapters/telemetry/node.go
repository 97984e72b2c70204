package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/crate/internal/core/ports"
)

const NodeID graft.ID = "adapter.progresssink"

func init() {
	graft.Register(graft.Node[ports.ProgressSink]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProgressSink, error) {
			return NewPlainSink(os.Stdout, os.Stderr), nil
		},
	})
}
