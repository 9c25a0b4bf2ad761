// Package config provides the configuration loader for ccflags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/ccflags/internal/core/domain"
	"go.trai.ch/ccflags/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	fs     ports.FileSystem
	lookup func(string) (string, bool)
}

// NewLoader creates a new Loader reading through fsys and expanding variables from the
// process environment.
func NewLoader(logger ports.Logger, fsys ports.FileSystem) *Loader {
	return &Loader{
		Logger: logger,
		fs:     fsys,
		lookup: os.LookupEnv,
	}
}

// WithLookup replaces the environment used for variable expansion.
func (l *Loader) WithLookup(lookup func(string) (string, bool)) *Loader {
	l.lookup = lookup
	return l
}

// Load finds the configuration file in cwd or one of its parents and reads it.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	configPath, err := l.findConfiguration(absCwd)
	if err != nil {
		return nil, err
	}

	return l.LoadFile(configPath)
}

// LoadFile reads the settings from the given configuration file.
func (l *Loader) LoadFile(path string) (*domain.Settings, error) {
	configPath, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	var configfile Configfile
	if err := l.readAndUnmarshalYAML(configPath, &configfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	settings, err := l.buildSettings(configPath, &configfile)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	l.Logger.Debug(fmt.Sprintf("loaded %s", configPath))
	return settings, nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := cwd

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.fs.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) buildSettings(configPath string, cf *Configfile) (*domain.Settings, error) {
	if cf.Version != "" && cf.Version != domain.ConfigVersion {
		return nil, zerr.With(domain.ErrUnsupportedConfigVersion, "version", cf.Version)
	}

	configDir := filepath.Dir(configPath)
	settings := domain.NewSettings()
	settings.ConfigPath = configPath

	flags, err := l.expandAll(cf.Flags)
	if err != nil {
		return nil, zerr.With(err, "key", "flags")
	}
	settings.Static = domain.StaticConfiguration{
		Flags:     flags,
		AnchorDir: configDir,
	}

	if cf.Database != "" {
		database, err := l.expand(cf.Database)
		if err != nil {
			return nil, zerr.With(err, "key", "database")
		}
		settings.DatabaseDir = resolveDir(configDir, database)
	}

	if cf.Strip != nil {
		settings.StripFlags = cf.Strip
	}

	if cf.PathPrefixes != nil {
		if err := validatePathPrefixes(cf.PathPrefixes); err != nil {
			return nil, err
		}
		settings.PathPrefixes = cf.PathPrefixes
	}

	if cf.HeaderExtensions != nil {
		if err := validateExtensions("header_extensions", cf.HeaderExtensions); err != nil {
			return nil, err
		}
		settings.HeaderExtensions = cf.HeaderExtensions
	}

	if cf.SourceExtensions != nil {
		if err := validateExtensions("source_extensions", cf.SourceExtensions); err != nil {
			return nil, err
		}
		settings.SourceExtensions = cf.SourceExtensions
	}

	return settings, nil
}

// expandAll expands environment references in every value.
func (l *Loader) expandAll(values []string) ([]string, error) {
	out := make([]string, 0, len(values))
	for _, v := range values {
		expanded, err := l.expand(v)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded)
	}
	return out, nil
}

// expand replaces $VAR and ${VAR} in value and turns $$ into a literal $.
// Referencing an unset variable is an error.
func (l *Loader) expand(value string) (string, error) {
	var missing string
	expanded := os.Expand(value, func(name string) string {
		if name == "$" {
			return "$"
		}
		v, ok := l.lookup(name)
		if !ok && missing == "" {
			missing = name
		}
		return v
	})

	if missing != "" {
		return "", zerr.With(domain.ErrConfigurationMissing, "variable", missing)
	}
	return expanded, nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func (l *Loader) readAndUnmarshalYAML(configPath string, target *Configfile) error {
	configFile, err := l.fs.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

func validatePathPrefixes(prefixes []string) error {
	for i, prefix := range prefixes {
		if prefix == "" {
			return zerr.With(domain.ErrEmptyPathPrefix, "index", i)
		}
	}
	return nil
}

func validateExtensions(key string, exts []string) error {
	for _, ext := range exts {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			err := zerr.With(domain.ErrInvalidExtension, "key", key)
			return zerr.With(err, "value", ext)
		}
	}
	return nil
}

// resolveDir anchors a configured directory at the configuration file's directory.
func resolveDir(configDir, dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Clean(filepath.Join(configDir, dir))
}
