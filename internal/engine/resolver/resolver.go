// Package resolver decides which compiler flags apply to a file.
package resolver

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/ccflags/internal/core/domain"
	"go.trai.ch/ccflags/internal/core/ports"
	"go.trai.ch/ccflags/internal/engine/normalizer"
)

// SpanName is the name of the span wrapping every resolution.
const SpanName = "ccflags.resolve"

// Resolver answers flag requests from either a compilation database or a static flag list.
// The mode is fixed at construction.
type Resolver struct {
	mode       domain.Mode
	db         ports.CompilationDatabase
	static     domain.StaticConfiguration
	stripFlags []string
	normalizer *normalizer.Normalizer
	headers    *HeaderResolver
	logger     ports.Logger
	tracer     ports.Tracer
}

// New creates a Resolver. A nil db selects static mode.
func New(
	settings *domain.Settings,
	db ports.CompilationDatabase,
	fsys ports.FileSystem,
	logger ports.Logger,
	tracer ports.Tracer,
) *Resolver {
	mode := domain.ModeStatic
	if db != nil {
		mode = domain.ModeDatabase
	}

	return &Resolver{
		mode: mode,
		db:   db,
		static: domain.StaticConfiguration{
			Flags:     slices.Clone(settings.Static.Flags),
			AnchorDir: settings.Static.AnchorDir,
		},
		stripFlags: slices.Clone(settings.StripFlags),
		normalizer: normalizer.New(settings.PathPrefixes),
		headers:    NewHeaderResolver(fsys, settings.HeaderExtensions, settings.SourceExtensions),
		logger:     logger,
		tracer:     tracer,
	}
}

// Mode returns the mode selected at construction.
func (r *Resolver) Mode() domain.Mode {
	return r.mode
}

// Resolve returns the flags for filePath, or false when there is no opinion on the file.
// Options are accepted for callers that forward them and are currently unused.
func (r *Resolver) Resolve(
	ctx context.Context,
	filePath string,
	_ map[string]any,
) (*domain.Resolution, bool) {
	_, span := r.tracer.Start(ctx, SpanName)
	defer span.End()

	span.SetAttribute("file", filePath)
	span.SetAttribute("mode", r.mode.String())

	var (
		res   *domain.Resolution
		found bool
	)
	if r.mode == domain.ModeDatabase {
		res, found = r.fromDatabase(filePath, span)
	} else {
		res, found = r.fromStatic(), true
	}

	span.SetAttribute("found", found)
	if found {
		span.SetAttribute("flags", len(res.Flags))
	}
	return res, found
}

func (r *Resolver) fromStatic() *domain.Resolution {
	return &domain.Resolution{
		Flags:     r.normalizer.Normalize(r.static.Flags, r.static.AnchorDir),
		Cacheable: true,
	}
}

func (r *Resolver) fromDatabase(filePath string, span ports.Span) (*domain.Resolution, bool) {
	record := r.lookupRecord(filePath, span)
	if !record.HasFlags() {
		r.logger.Debug(fmt.Sprintf("no compilation record for %s", filePath))
		return nil, false
	}

	flags := r.normalizer.Normalize(record.Flags, record.WorkingDir)
	return &domain.Resolution{
		Flags:     normalizer.Strip(flags, r.stripFlags),
		Cacheable: true,
	}, true
}

// lookupRecord finds the record to borrow flags from. A header takes the first existing
// sibling whose record carries flags.
func (r *Resolver) lookupRecord(filePath string, span ports.Span) *domain.CompilationRecord {
	if !r.headers.IsHeader(filePath) {
		return r.lookup(filePath, span)
	}

	for sibling := range r.headers.Siblings(filePath) {
		record := r.lookup(sibling, span)
		if record.HasFlags() {
			span.SetAttribute("source", sibling)
			return record
		}
	}
	return nil
}

func (r *Resolver) lookup(path string, span ports.Span) *domain.CompilationRecord {
	record, err := r.db.Lookup(path)
	if err != nil {
		span.RecordError(err)
		r.logger.Warn(fmt.Sprintf("compilation database lookup failed for %s: %v", path, err))
		return nil
	}
	return record
}
