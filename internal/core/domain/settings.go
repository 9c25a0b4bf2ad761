package domain

// Settings is the loaded configuration of a project.
type Settings struct {
	// ConfigPath is the absolute path of the file the settings were read from.
	ConfigPath string
	// DatabaseDir is the absolute compilation database folder, empty when none is configured.
	DatabaseDir string
	// Static holds the fallback flags and their anchor directory.
	Static StaticConfiguration
	// StripFlags are removed from flags taken from the compilation database.
	StripFlags []string
	// PathPrefixes are the markers rewritten by path normalization.
	PathPrefixes []string
	// HeaderExtensions identify header files.
	HeaderExtensions []string
	// SourceExtensions are tried in order when pairing a header with a translation unit.
	SourceExtensions []string
}

// NewSettings returns settings with every list set to its default.
func NewSettings() *Settings {
	return &Settings{
		StripFlags:       clone(DefaultStripFlags),
		PathPrefixes:     clone(DefaultPathPrefixes),
		HeaderExtensions: clone(DefaultHeaderExtensions),
		SourceExtensions: clone(DefaultSourceExtensions),
	}
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
