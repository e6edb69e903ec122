package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mono/internal/adapters/catalog"            //nolint:depguard // Wired in app layer
	"go.trai.ch/mono/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/mono/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/mono/internal/adapters/graphviz"           //nolint:depguard // Wired in app layer
	"go.trai.ch/mono/internal/adapters/jsonstore"          //nolint:depguard // Wired in app layer
	"go.trai.ch/mono/internal/adapters/linker"             //nolint:depguard // Wired in app layer
	"go.trai.ch/mono/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/mono/internal/adapters/npm"                //nolint:depguard // Wired in app layer
	"go.trai.ch/mono/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/mono/internal/core/ports"
	"go.trai.ch/mono/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			catalog.NodeID,
			jsonstore.NodeID,
			npm.NodeID,
			linker.NodeID,
			fs.FileSystemNodeID,
			graphviz.NodeID,
			logger.NodeID,
			pipeline.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	var (
		deps Dependencies
		err  error
	)

	if deps.Workspaces, err = graft.Dep[ports.WorkspaceLoader](ctx); err != nil {
		return nil, err
	}
	if deps.Catalogs, err = graft.Dep[ports.CatalogLoader](ctx); err != nil {
		return nil, err
	}
	if deps.Store, err = graft.Dep[ports.ManifestStore](ctx); err != nil {
		return nil, err
	}
	if deps.Manager, err = graft.Dep[ports.PackageManager](ctx); err != nil {
		return nil, err
	}
	if deps.Linker, err = graft.Dep[ports.Linker](ctx); err != nil {
		return nil, err
	}
	if deps.FS, err = graft.Dep[ports.FileSystem](ctx); err != nil {
		return nil, err
	}
	if deps.Renderer, err = graft.Dep[ports.GraphRenderer](ctx); err != nil {
		return nil, err
	}
	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	if deps.Runner, err = graft.Dep[*pipeline.Runner](ctx); err != nil {
		return nil, err
	}

	return New(deps), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
