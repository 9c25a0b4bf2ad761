package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.trai.ch/ccflags/internal/adapters/detector"
	"go.trai.ch/ccflags/internal/core/domain"
	"go.trai.ch/ccflags/internal/ui/output"
	"go.trai.ch/ccflags/internal/ui/style"
	"go.trai.ch/zerr"
)

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	Options
	// Format is one of auto, text or json.
	Format string
	// Out receives the resolved flags.
	Out io.Writer
}

// Reply is the JSON answer for one file, shared by resolve and serve.
type Reply struct {
	File      string   `json:"file"`
	Found     bool     `json:"found"`
	Flags     []string `json:"flags"`
	Cacheable bool     `json:"do_cache"`
}

// Resolve prints the flags of each file.
// A file without flags is not an error: text output warns on the log, JSON output reports found=false.
func (a *App) Resolve(ctx context.Context, files []string, opts ResolveOptions) error {
	if len(files) == 0 {
		return domain.ErrNoFilesSpecified
	}

	requested, err := detector.ParseFormat(opts.Format)
	if err != nil {
		return err
	}
	format := detector.ResolveFormat(detector.DetectEnvironment(outputFile(opts.Out)), requested)

	s, err := a.open(opts.Options)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	replies := make([]Reply, 0, len(files))
	for _, file := range files {
		replies = append(replies, a.resolveOne(ctx, s, file, nil))
	}

	if format == detector.FormatJSON {
		return writeJSON(opts.Out, replies)
	}
	return a.writeText(opts.Out, replies)
}

func (a *App) resolveOne(ctx context.Context, s *session, file string, options map[string]any) Reply {
	res, found := s.resolver.Resolve(ctx, file, options)
	if !found {
		return Reply{File: file, Flags: []string{}}
	}
	return Reply{File: file, Found: true, Flags: res.Flags, Cacheable: res.Cacheable}
}

func writeJSON(w io.Writer, replies []Reply) error {
	enc := json.NewEncoder(w)
	for i := range replies {
		if err := enc.Encode(&replies[i]); err != nil {
			return zerr.Wrap(err, "failed to write reply")
		}
	}
	return nil
}

func (a *App) writeText(w io.Writer, replies []Reply) error {
	heading := output.NewRenderer(w).NewStyle().Foreground(style.Iris)
	withHeadings := len(replies) > 1

	written := 0
	for _, reply := range replies {
		if !reply.Found {
			a.logger.Warn(fmt.Sprintf("no flags for %s", reply.File))
			continue
		}

		if withHeadings {
			if written > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return zerr.Wrap(err, "failed to write reply")
				}
			}
			if _, err := fmt.Fprintln(w, heading.Render("# "+reply.File)); err != nil {
				return zerr.Wrap(err, "failed to write reply")
			}
		}

		for _, flag := range reply.Flags {
			if _, err := fmt.Fprintln(w, flag); err != nil {
				return zerr.Wrap(err, "failed to write reply")
			}
		}
		written++
	}
	return nil
}
