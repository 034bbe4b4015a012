package modulefile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgmod/internal/core/ports"
)

const (
	// RendererNodeID is the unique identifier for the descriptor renderer Graft node.
	RendererNodeID graft.ID = "adapter.descriptor_renderer"
	// WriterNodeID is the unique identifier for the modulefile writer Graft node.
	WriterNodeID graft.ID = "adapter.modulefile_writer"
)

func init() {
	graft.Register(graft.Node[ports.DescriptorRenderer]{
		ID:        RendererNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DescriptorRenderer, error) {
			return NewRenderer(), nil
		},
	})

	graft.Register(graft.Node[ports.ModulefileWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModulefileWriter, error) {
			return NewWriter(NewRenderer()), nil
		},
	})
}
