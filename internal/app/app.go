// Package app implements the application layer for ccflags.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/ccflags/internal/adapters/telemetry"
	"go.trai.ch/ccflags/internal/adapters/watcher"
	"go.trai.ch/ccflags/internal/core/domain"
	"go.trai.ch/ccflags/internal/core/ports"
	"go.trai.ch/ccflags/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader   ports.ConfigLoader
	logger         ports.Logger
	fs             ports.FileSystem
	opener         ports.CompilationDatabaseOpener
	watcher        ports.Watcher
	tracer         ports.Tracer
	debounceWindow time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	fsys ports.FileSystem,
	opener ports.CompilationDatabaseOpener,
	w ports.Watcher,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader:   loader,
		logger:         log,
		fs:             fsys,
		opener:         opener,
		watcher:        w,
		tracer:         tracer,
		debounceWindow: watcher.DefaultDebounceWindow,
	}
}

// WithDebounceWindow sets how long serve waits for database changes to settle before
// invalidating its index.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounceWindow = d
	return a
}

// Options holds the settings shared by every command.
type Options struct {
	// ConfigPath selects an explicit configuration file instead of discovery.
	ConfigPath string
	// DatabaseDir overrides the compilation database folder of the configuration.
	DatabaseDir string
	// Verbose enables debug logs and span reporting.
	Verbose bool
	// LogJSON switches logs to JSON.
	LogJSON bool
}

// configurableLogger is implemented by loggers whose output can be tuned per invocation.
type configurableLogger interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// session is the resolver for one invocation and the configuration it was built from.
type session struct {
	settings *domain.Settings
	index    ports.CompilationIndex
	resolver *resolver.Resolver
	shutdown func(context.Context) error
}

func (s *session) close(ctx context.Context) {
	if s.shutdown != nil {
		_ = s.shutdown(ctx)
	}
}

// open configures logging, loads the settings and builds the resolver.
func (a *App) open(opts Options) (*session, error) {
	if l, ok := a.logger.(configurableLogger); ok {
		l.SetVerbose(opts.Verbose)
		l.SetJSON(opts.LogJSON)
	}

	s := &session{}
	if opts.Verbose {
		s.shutdown = telemetry.Install(telemetry.NewBridge(a.logger))
	}

	settings, err := a.loadSettings(opts)
	if err != nil {
		s.close(context.Background())
		return nil, err
	}
	s.settings = settings

	var db ports.CompilationDatabase
	if a.databaseExists(settings.DatabaseDir) {
		s.index = a.opener.Open(settings.DatabaseDir)
		db = s.index
	} else if settings.DatabaseDir != "" {
		a.logger.Warn(fmt.Sprintf("compilation database folder %s does not exist, using static flags", settings.DatabaseDir))
	}

	s.resolver = resolver.New(settings, db, a.fs, a.logger, a.tracer)
	a.logger.Debug(fmt.Sprintf("resolving in %s mode", s.resolver.Mode()))

	return s, nil
}

func (a *App) loadSettings(opts Options) (*domain.Settings, error) {
	var (
		settings *domain.Settings
		err      error
	)
	if opts.ConfigPath != "" {
		settings, err = a.configLoader.LoadFile(opts.ConfigPath)
	} else {
		settings, err = a.configLoader.Load(".")
	}
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.DatabaseDir != "" {
		dir, err := filepath.Abs(opts.DatabaseDir)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "database", opts.DatabaseDir)
		}
		settings.DatabaseDir = dir
	}

	return settings, nil
}

func (a *App) databaseExists(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := a.fs.Stat(dir)
	return err == nil && info.IsDir()
}

// outputFile returns w as a file when it is one, for terminal detection.
func outputFile(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}
