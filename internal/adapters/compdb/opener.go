package compdb

import (
	"go.trai.ch/ccflags/internal/core/domain"
	"go.trai.ch/ccflags/internal/core/ports"
)

var _ ports.CompilationDatabaseOpener = (*Opener)(nil)

// Opener creates Database instances sharing one filesystem, hasher and logger.
type Opener struct {
	fs     ports.FileSystem
	hasher ports.Hasher
	logger ports.Logger
}

// NewOpener creates a new Opener.
func NewOpener(fsys ports.FileSystem, hasher ports.Hasher, logger ports.Logger) *Opener {
	return &Opener{fs: fsys, hasher: hasher, logger: logger}
}

// Open returns the database stored as compile_commands.json in dir.
func (o *Opener) Open(dir string) ports.CompilationIndex {
	return New(domain.CompileCommandsPath(dir), o.fs, o.hasher, o.logger)
}
