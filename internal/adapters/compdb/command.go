package compdb

import (
	"path/filepath"
	"strings"

	"github.com/mattn/go-shellwords"
	"go.trai.ch/ccflags/internal/core/domain"
	"go.trai.ch/zerr"
)

// arguments returns the full compiler invocation of an entry.
func arguments(e *Entry) ([]string, error) {
	if len(e.Arguments) > 0 {
		return e.Arguments, nil
	}
	if e.Command == "" {
		return nil, nil
	}

	args, err := shellwords.Parse(e.Command)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCommandParseFailed.Error()), "file", e.File)
	}
	return args, nil
}

// compileFlags strips the parts of an invocation that belong to this one compilation:
// the compiler executable, the compiled file, -c and the output file.
func compileFlags(args []string, file, directory string) []string {
	if len(args) == 0 {
		return nil
	}

	flags := make([]string, 0, len(args)-1)
	skipNext := false

	for _, arg := range args[1:] {
		if skipNext {
			skipNext = false
			continue
		}

		switch {
		case arg == "-c":
			continue
		case arg == "-o":
			skipNext = true
			continue
		case strings.HasPrefix(arg, "-o") && !strings.HasPrefix(arg, "-objc"):
			continue
		case !strings.HasPrefix(arg, "-") && resolve(directory, arg) == file:
			continue
		}

		flags = append(flags, arg)
	}

	return flags
}

// resolve makes path absolute against dir.
func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(dir, path))
}
