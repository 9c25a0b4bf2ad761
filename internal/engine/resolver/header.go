package resolver

import (
	"iter"

	"go.trai.ch/ccflags/internal/core/domain"
	"go.trai.ch/ccflags/internal/core/ports"
)

// HeaderResolver pairs header files with the translation units that include them.
//
// The pairing is a naming heuristic: a header borrows the flags of an existing source
// file with the same base name. Nothing guarantees that file actually includes it.
type HeaderResolver struct {
	fs         ports.FileSystem
	headerExts []string
	sourceExts []string
}

// NewHeaderResolver creates a HeaderResolver. sourceExts are tried in order.
func NewHeaderResolver(fsys ports.FileSystem, headerExts, sourceExts []string) *HeaderResolver {
	return &HeaderResolver{
		fs:         fsys,
		headerExts: headerExts,
		sourceExts: sourceExts,
	}
}

// IsHeader reports whether path has a header extension.
func (h *HeaderResolver) IsHeader(path string) bool {
	return domain.HasExtension(path, h.headerExts)
}

// Siblings yields the existing source files sharing the base name of header, in priority order.
func (h *HeaderResolver) Siblings(header string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, ext := range h.sourceExts {
			candidate := domain.SwapExtension(header, ext)
			if !h.exists(candidate) {
				continue
			}
			if !yield(candidate) {
				return
			}
		}
	}
}

// Sibling returns the first existing source file for header.
func (h *HeaderResolver) Sibling(header string) (string, bool) {
	for candidate := range h.Siblings(header) {
		return candidate, true
	}
	return "", false
}

func (h *HeaderResolver) exists(path string) bool {
	info, err := h.fs.Stat(path)
	return err == nil && !info.IsDir()
}
