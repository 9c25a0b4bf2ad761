package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no configuration file can be found.
	ErrConfigNotFound = zerr.New("could not find " + ConfigFileName)

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigurationMissing is returned when the static flags reference an environment
	// variable that is not set.
	ErrConfigurationMissing = zerr.New("required environment variable is not set")

	// ErrUnsupportedConfigVersion is returned when the config file declares an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrInvalidExtension is returned when a configured file extension does not start with a dot.
	ErrInvalidExtension = zerr.New("file extension must start with '.'")

	// ErrEmptyPathPrefix is returned when a configured path prefix is empty.
	ErrEmptyPathPrefix = zerr.New("path prefix must not be empty")

	// ErrFailedToGetRoot is returned when the working directory cannot be made absolute.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of working directory")

	// ErrDatabaseReadFailed is returned when the compilation database cannot be read.
	ErrDatabaseReadFailed = zerr.New("failed to read compilation database")

	// ErrDatabaseParseFailed is returned when the compilation database cannot be parsed.
	ErrDatabaseParseFailed = zerr.New("failed to parse compilation database")

	// ErrCommandParseFailed is returned when a compile command string cannot be split into arguments.
	ErrCommandParseFailed = zerr.New("failed to split compile command")

	// ErrMissingDirectory is reported when a compile command entry has no working directory.
	ErrMissingDirectory = zerr.New("compile command entry has no directory")

	// ErrInvalidRequest is returned when a serve request cannot be decoded.
	ErrInvalidRequest = zerr.New("invalid resolve request")

	// ErrInvalidOutputFormat is returned when an unknown output format is requested.
	ErrInvalidOutputFormat = zerr.New("invalid output format")

	// ErrNoFilesSpecified is returned when resolve is invoked without any file.
	ErrNoFilesSpecified = zerr.New("no files specified")
)
