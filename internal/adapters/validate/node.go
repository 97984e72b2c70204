package validate

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crate/internal/core/ports"
)

const NodeID graft.ID = "adapter.outputvalidator"

func init() {
	graft.Register(graft.Node[ports.OutputValidator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OutputValidator, error) {
			return NewValidator(), nil
		},
	})
}
