package compdb

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ccflags/internal/adapters/fs"
	"go.trai.ch/ccflags/internal/adapters/logger"
	"go.trai.ch/ccflags/internal/core/ports"
)

// NodeID is the unique identifier for the compilation database opener Graft node.
const NodeID graft.ID = "adapter.compilation_database"

func init() {
	graft.Register(graft.Node[ports.CompilationDatabaseOpener]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FileSystemNodeID, fs.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CompilationDatabaseOpener, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewOpener(fsys, hasher, log), nil
		},
	})
}
