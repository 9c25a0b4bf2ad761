package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ccflags/internal/adapters/compdb"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ccflags/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ccflags/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/ccflags/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ccflags/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/ccflags/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/ccflags/internal/core/ports"
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
			logger.NodeID,
			fs.FileSystemNodeID,
			compdb.NodeID,
			watcher.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			watcher.NodeID,
		},
		Run: runComponentsNode,
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

	fsys, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	opener, err := graft.Dep[ports.CompilationDatabaseOpener](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, fsys, opener, w, tracer), nil
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

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:     app,
		Logger:  log,
		Watcher: w,
	}, nil
}
