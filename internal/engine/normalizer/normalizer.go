// Package normalizer rewrites relative paths inside compiler flags into absolute paths.
package normalizer

import (
	"path/filepath"
	"slices"
	"strings"
)

// Normalizer anchors the paths introduced by a fixed set of flag markers.
type Normalizer struct {
	prefixes []string
}

// New creates a Normalizer for the given path markers, matched in order.
func New(prefixes []string) *Normalizer {
	return &Normalizer{prefixes: slices.Clone(prefixes)}
}

// Normalize returns a copy of flags where every path introduced by a marker is absolute.
//
// A token equal to a marker leaves the marker untouched and rewrites the next token.
// A token starting with a marker rewrites only the part after the marker.
// Paths that are already absolute are kept, so normalizing twice changes nothing.
// Empty tokens are dropped. An empty workingDir disables the rewrite entirely.
func (n *Normalizer) Normalize(flags []string, workingDir string) []string {
	if workingDir == "" {
		return slices.Clone(flags)
	}

	out := make([]string, 0, len(flags))
	pathNext := false

	for _, flag := range flags {
		newFlag := flag

		switch {
		case pathNext:
			pathNext = false
			newFlag = anchor(flag, workingDir)
		case n.isMarker(flag):
			pathNext = true
		default:
			if marker, ok := n.embeddedMarker(flag); ok {
				newFlag = marker + anchor(strings.TrimPrefix(flag, marker), workingDir)
			}
		}

		if newFlag != "" {
			out = append(out, newFlag)
		}
	}

	// A trailing marker has no path to rewrite; pathNext is simply dropped.
	return out
}

func (n *Normalizer) isMarker(flag string) bool {
	return slices.Contains(n.prefixes, flag)
}

func (n *Normalizer) embeddedMarker(flag string) (string, bool) {
	for _, marker := range n.prefixes {
		if strings.HasPrefix(flag, marker) {
			return marker, true
		}
	}
	return "", false
}

func anchor(path, workingDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workingDir, path)
}

// Strip returns a copy of flags with the first occurrence of each token removed.
// Tokens that do not occur are ignored.
func Strip(flags, tokens []string) []string {
	out := slices.Clone(flags)
	for _, token := range tokens {
		if i := slices.Index(out, token); i >= 0 {
			out = slices.Delete(out, i, i+1)
		}
	}
	return out
}
