package pypi

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgmod/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/pkgmod/internal/core/ports"
)

// NodeID is the unique identifier for the package index factory Graft node.
const NodeID graft.ID = "adapter.pypi"

func init() {
	graft.Register(graft.Node[ports.IndexFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.IndexFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
