package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgmod/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgmod/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgmod/internal/adapters/modulefile" //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgmod/internal/adapters/pip"        //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgmod/internal/adapters/pypi"       //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgmod/internal/adapters/shell"      //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgmod/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the entry point needs from the graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			pypi.NodeID,
			pip.NodeID,
			modulefile.RendererNodeID,
			modulefile.WriterNodeID,
			shell.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	indexes, err := graft.Dep[ports.IndexFactory](ctx)
	if err != nil {
		return nil, err
	}

	installers, err := graft.Dep[ports.InstallerFactory](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.DescriptorRenderer](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.ModulefileWriter](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, indexes, installers, renderer, writer, executor), nil
}
