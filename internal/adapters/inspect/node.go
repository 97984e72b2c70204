package inspect

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crate/internal/core/ports"
)

const NodeID graft.ID = "adapter.inspector"

func init() {
	graft.Register(graft.Node[ports.Inspector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Inspector, error) {
			return NewInspector(), nil
		},
	})
}
