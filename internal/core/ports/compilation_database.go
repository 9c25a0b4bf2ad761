// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/ccflags/internal/core/domain"

//go:generate mockgen -source=compilation_database.go -destination=mocks/mock_compilation_database.go -package=mocks

// CompilationDatabase gives read access to the compiler invocations recorded for a project.
type CompilationDatabase interface {
	// Lookup returns the record for the given source file.
	// Returns nil, nil if the file has no record.
	Lookup(path string) (*domain.CompilationRecord, error)
}

// CompilationIndex is a CompilationDatabase backed by a file that may change while the
// process runs.
type CompilationIndex interface {
	CompilationDatabase
	// Path returns the database file the index is read from.
	Path() string
	// Entries returns the indexed source files, sorted.
	Entries() ([]string, error)
	// Invalidate makes the next access re-check the database file.
	Invalidate()
}

// CompilationDatabaseOpener opens the compilation database stored in a folder.
type CompilationDatabaseOpener interface {
	// Open returns an index over the database in dir. The file is read lazily.
	Open(dir string) CompilationIndex
}
