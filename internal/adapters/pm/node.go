package pm

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crate/internal/core/ports"
)

const NodeID graft.ID = "adapter.packagemanagers"

func init() {
	graft.Register(graft.Node[ports.PackageManagers]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageManagers, error) {
			return NewResolver(), nil
		},
	})
}
