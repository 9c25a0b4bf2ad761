package app

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"go.trai.ch/ccflags/internal/adapters/watcher"
	"go.trai.ch/ccflags/internal/core/domain"
	"go.trai.ch/ccflags/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// maxRequestSize bounds a single serve request line.
const maxRequestSize = 1 << 20

// ServeOptions configuration for the Serve method.
type ServeOptions struct {
	Options
	// In carries one JSON request per line.
	In io.Reader
	// Out receives one JSON reply per request.
	Out io.Writer
}

// Request asks serve for the flags of one file.
type Request struct {
	File    string         `json:"file"`
	Options map[string]any `json:"options,omitempty"`
}

type errorReply struct {
	Error string `json:"error"`
}

// Serve answers JSON-lines requests until In is exhausted or ctx is canceled.
// In database mode the database folder is watched and the index invalidated when it changes.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	s, err := a.open(opts.Options)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	if s.index != nil {
		dir := filepath.Dir(s.index.Path())
		if err := a.watcher.Start(ctx, dir); err != nil {
			a.logger.Warn(fmt.Sprintf("not watching %s: %v", dir, err))
		} else {
			g.Go(func() error {
				a.invalidateOnChange(s.index)
				return nil
			})
		}
	}

	g.Go(func() error {
		defer cancel()
		return a.serveRequests(ctx, s, opts.In, opts.Out)
	})

	return g.Wait()
}

// invalidateOnChange drops the cached index whenever the database file changes.
// It returns when the watcher's event stream ends.
func (a *App) invalidateOnChange(index ports.CompilationIndex) {
	debouncer := watcher.NewDebouncer(a.debounceWindow, func(_ []string) {
		index.Invalidate()
		a.logger.Debug(fmt.Sprintf("%s changed", index.Path()))
	})
	defer debouncer.Stop()

	for event := range a.watcher.Events() {
		if filepath.Base(event.Path) != domain.CompileCommandsFileName {
			continue
		}
		debouncer.Add(event.Path)
	}
}

func (a *App) serveRequests(ctx context.Context, s *session, in io.Reader, out io.Writer) error {
	lines := make(chan []byte)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxRequestSize)
		for scanner.Scan() {
			select {
			case lines <- bytes.Clone(scanner.Bytes()):
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	enc := json.NewEncoder(out)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return zerr.Wrap(err, "failed to read requests")
					}
				default:
				}
				return nil
			}
			if len(bytes.TrimSpace(line)) == 0 {
				continue
			}
			if err := enc.Encode(a.answer(ctx, s, line)); err != nil {
				return zerr.Wrap(err, "failed to write reply")
			}
		}
	}
}

// answer decodes one request and resolves it. Malformed requests yield an error reply.
func (a *App) answer(ctx context.Context, s *session, line []byte) any {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return errorReply{Error: zerr.Wrap(err, domain.ErrInvalidRequest.Error()).Error()}
	}
	if req.File == "" {
		return errorReply{Error: zerr.With(domain.ErrInvalidRequest, "reason", "missing file").Error()}
	}

	reply := a.resolveOne(ctx, s, req.File, req.Options)
	return &reply
}
