// Package compdb reads Clang JSON compilation databases (compile_commands.json).
package compdb

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"go.trai.ch/ccflags/internal/core/domain"
	"go.trai.ch/ccflags/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CompilationIndex = (*Database)(nil)

// Database indexes a compile_commands.json file by absolute source path.
//
// The file is read on first use. Later accesses re-read it only when its size or
// modification time changed, or after Invalidate, and re-parse it only when its content
// hash differs. It is safe for concurrent use.
type Database struct {
	path   string
	fs     ports.FileSystem
	hasher ports.Hasher
	logger ports.Logger

	mu          sync.Mutex
	records     map[domain.InternedString]*domain.CompilationRecord
	modTime     time.Time
	size        int64
	fingerprint uint64
	stale       bool
}

// New creates a Database over the file at path.
func New(path string, fsys ports.FileSystem, hasher ports.Hasher, logger ports.Logger) *Database {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	return &Database{
		path:   path,
		fs:     fsys,
		hasher: hasher,
		logger: logger,
	}
}

// Path returns the database file.
func (d *Database) Path() string {
	return d.path
}

// Lookup returns the record for path, made absolute against the process working directory.
// Returns nil, nil if the file has no record.
func (d *Database) Lookup(path string) (*domain.CompilationRecord, error) {
	records, err := d.index()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "file", path)
	}

	return records[domain.NewInternedString(abs)], nil
}

// Entries returns the indexed source files, sorted.
func (d *Database) Entries() ([]string, error) {
	records, err := d.index()
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(records))
	for file := range records {
		files = append(files, file.String())
	}
	slices.Sort(files)
	return files, nil
}

// Invalidate makes the next access re-read the file even if its metadata is unchanged.
func (d *Database) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stale = true
}

// index returns the current records, refreshing them from disk when needed.
func (d *Database) index() (map[domain.InternedString]*domain.CompilationRecord, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	info, err := d.fs.Stat(d.path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDatabaseReadFailed.Error()), "path", d.path)
	}

	if d.records != nil && !d.stale && info.ModTime().Equal(d.modTime) && info.Size() == d.size {
		return d.records, nil
	}

	data, err := d.fs.ReadFile(d.path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDatabaseReadFailed.Error()), "path", d.path)
	}

	d.modTime = info.ModTime()
	d.size = info.Size()
	d.stale = false

	sum := d.hasher.ComputeHash(data)
	if d.records != nil && sum == d.fingerprint {
		return d.records, nil
	}

	records, err := d.parse(data)
	if err != nil {
		d.records = nil
		return nil, zerr.With(err, "path", d.path)
	}

	d.records = records
	d.fingerprint = sum
	d.logger.Debug(fmt.Sprintf("indexed %d files from %s", len(records), d.path))

	return records, nil
}

func (d *Database) parse(data []byte) (map[domain.InternedString]*domain.CompilationRecord, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, zerr.Wrap(err, domain.ErrDatabaseParseFailed.Error())
	}

	records := make(map[domain.InternedString]*domain.CompilationRecord, len(entries))
	for i := range entries {
		entry := &entries[i]
		if entry.File == "" {
			continue
		}

		if entry.Directory == "" {
			d.logger.Warn(zerr.With(domain.ErrMissingDirectory, "file", entry.File).Error())
			continue
		}

		directory := domain.NewInternedString(resolve(filepath.Dir(d.path), entry.Directory)).String()
		file := resolve(directory, entry.File)
		key := domain.NewInternedString(file)
		if _, seen := records[key]; seen {
			continue
		}

		args, err := arguments(entry)
		if err != nil {
			d.logger.Warn(err.Error())
			continue
		}

		records[key] = &domain.CompilationRecord{
			File:       key.String(),
			Flags:      compileFlags(args, file, directory),
			WorkingDir: directory,
		}
	}

	return records, nil
}
