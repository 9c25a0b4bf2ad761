package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = ".ccflags.yaml"

	// CompileCommandsFileName is the name of the JSON compilation database inside the database folder.
	CompileCommandsFileName = "compile_commands.json"

	// ConfigVersion is the only configuration schema version understood by this build.
	ConfigVersion = "1"
)

// CompileCommandsPath returns the path of the JSON compilation database inside dir.
func CompileCommandsPath(dir string) string {
	return filepath.Join(dir, CompileCommandsFileName)
}
