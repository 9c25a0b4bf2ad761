package domain

// CompilationRecord holds the flags a compilation database stores for one source file.
// Flags may contain paths relative to WorkingDir.
type CompilationRecord struct {
	File       string
	Flags      []string
	WorkingDir string
}

// HasFlags reports whether the record carries at least one flag.
func (r *CompilationRecord) HasFlags() bool {
	return r != nil && len(r.Flags) > 0
}

// StaticConfiguration is the flag list used when no compilation database is configured.
// Relative paths in Flags are anchored at AnchorDir.
type StaticConfiguration struct {
	Flags     []string
	AnchorDir string
}

// Resolution is the answer given to the completion engine for one file.
type Resolution struct {
	Flags []string `json:"flags"`
	// Cacheable tells the caller it may cache Flags by file path.
	Cacheable bool `json:"do_cache"`
}
