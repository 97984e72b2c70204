package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crate/internal/adapters/pm"
	"go.trai.ch/crate/internal/core/ports"
)

const NodeID graft.ID = "adapter.configresolver"

func init() {
	graft.Register(graft.Node[ports.ConfigResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{pm.NodeID},
		Run: func(ctx context.Context) (ports.ConfigResolver, error) {
			pms, err := graft.Dep[ports.PackageManagers](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(pms), nil
		},
	})
}
