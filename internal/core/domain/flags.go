package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

// DefaultPathPrefixes are the flag markers that introduce a filesystem path, in match order.
// A token equal to a marker takes its path from the next token; a token starting with a
// marker carries the path in the same token.
var DefaultPathPrefixes = []string{"-isystem", "-I", "-iquote", "--sysroot="}

// DefaultStripFlags are removed from flags borrowed from a compilation database.
// "-stdlib=libc++" is recorded by clang-based toolchains and rejected by the GCC
// cross compilers the database is usually generated for.
var DefaultStripFlags = []string{"-stdlib=libc++"}

// DefaultHeaderExtensions identify header files, which have no compilation record of their own.
var DefaultHeaderExtensions = []string{".h", ".hxx", ".hpp", ".hh"}

// DefaultSourceExtensions are tried, in order, when looking for the translation unit of a header.
var DefaultSourceExtensions = []string{".cpp", ".cxx", ".cc", ".c", ".m", ".mm"}

// HasExtension reports whether path ends in one of exts.
func HasExtension(path string, exts []string) bool {
	ext := filepath.Ext(path)
	if ext == "" {
		return false
	}
	return slices.Contains(exts, ext)
}

// SwapExtension replaces the extension of path with ext.
func SwapExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
