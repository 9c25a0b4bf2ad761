package config

// Configfile represents the structure of the .ccflags.yaml configuration file.
// Lists that are omitted take their defaults; an explicitly empty list stays empty.
type Configfile struct {
	Version          string   `yaml:"version"`
	Database         string   `yaml:"database"`
	Flags            []string `yaml:"flags"`
	Strip            []string `yaml:"strip"`
	PathPrefixes     []string `yaml:"path_prefixes"`
	HeaderExtensions []string `yaml:"header_extensions"`
	SourceExtensions []string `yaml:"source_extensions"`
}
