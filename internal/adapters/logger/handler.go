// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/ccflags/internal/ui/output"
	"go.trai.ch/ccflags/internal/ui/style"
)

// levelMark is the icon and color a log line of one level is drawn with.
type levelMark struct {
	icon  string
	color string
}

var marks = map[slog.Level]levelMark{
	slog.LevelDebug: {icon: style.Tilde, color: string(style.Iris)},
	slog.LevelInfo:  {color: string(style.Slate)},
	slog.LevelWarn:  {icon: style.Warning, color: string(style.Yellow)},
	slog.LevelError: {icon: style.Cross, color: string(style.Red)},
}

// markFor returns the mark of the closest standard level at or below level.
func markFor(level slog.Level) levelMark {
	switch {
	case level >= slog.LevelError:
		return marks[slog.LevelError]
	case level >= slog.LevelWarn:
		return marks[slog.LevelWarn]
	case level >= slog.LevelInfo:
		return marks[slog.LevelInfo]
	default:
		return marks[slog.LevelDebug]
	}
}

// sink is the terminal shared by a handler and every handler derived from it.
type sink struct {
	mu  sync.Mutex
	out *termenv.Output
}

// PrettyHandler is a slog.Handler writing one colored line per record:
// an optional level icon, the message, then key=value attributes.
// Handlers derived through WithAttrs and WithGroup share one writer and never interleave lines.
type PrettyHandler struct {
	sink   *sink
	level  slog.Leveler
	prefix string
	bound  string
}

// NewPrettyHandler creates a new PrettyHandler writing to w, or to stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	h := &PrettyHandler{
		sink:  &sink{out: output.New(w)},
		level: slog.LevelInfo,
	}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record as a single line.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	mark := markFor(r.Level)

	var line strings.Builder
	if mark.icon != "" {
		line.WriteString(mark.icon)
		line.WriteByte(' ')
	}
	line.WriteString(r.Message)
	line.WriteString(h.bound)
	r.Attrs(func(attr slog.Attr) bool {
		appendAttr(&line, h.prefix, attr)
		return true
	})

	h.sink.mu.Lock()
	defer h.sink.mu.Unlock()

	colored := h.sink.out.String(line.String()).Foreground(termenv.RGBColor(mark.color))
	_, err := h.sink.out.WriteString(colored.String() + "\n")
	return err
}

// WithAttrs returns a handler that renders attrs on every line after the record's message.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	var bound strings.Builder
	bound.WriteString(h.bound)
	for _, attr := range attrs {
		appendAttr(&bound, h.prefix, attr)
	}

	clone := *h
	clone.bound = bound.String()
	return &clone
}

// WithGroup returns a handler that qualifies later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

// appendAttr writes " key=value" to b. Group values are flattened into dotted keys and
// attributes with an empty key are dropped.
func appendAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()

	if attr.Value.Kind() == slog.KindGroup {
		nested := prefix
		if attr.Key != "" {
			nested = prefix + attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			appendAttr(b, nested, member)
		}
		return
	}

	if attr.Key == "" {
		return
	}

	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(attr.Key)
	b.WriteByte('=')
	b.WriteString(attr.Value.String())
}
