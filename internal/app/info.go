package app

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"go.trai.ch/ccflags/internal/ui/output"
	"go.trai.ch/ccflags/internal/ui/style"
	"go.trai.ch/zerr"
)

// InfoOptions configuration for the Info method.
type InfoOptions struct {
	Options
	// Out receives the report.
	Out io.Writer
}

// Info prints how files would be resolved: the mode and the configuration behind it.
func (a *App) Info(_ context.Context, opts InfoOptions) error {
	s, err := a.open(opts.Options)
	if err != nil {
		return err
	}
	defer s.close(context.Background())

	database := s.settings.DatabaseDir
	if database == "" {
		database = "-"
	}

	entries := "-"
	if s.index != nil {
		files, err := s.index.Entries()
		if err != nil {
			a.logger.Warn(fmt.Sprintf("cannot read %s: %v", s.index.Path(), err))
			entries = "unreadable"
		} else {
			entries = strconv.Itoa(len(files))
		}
	}

	rows := [][2]string{
		{"mode", s.resolver.Mode().String()},
		{"config", s.settings.ConfigPath},
		{"database", database},
		{"entries", entries},
		{"anchor", s.settings.Static.AnchorDir},
		{"static flags", strconv.Itoa(len(s.settings.Static.Flags))},
	}

	key := output.NewRenderer(opts.Out).NewStyle().Foreground(style.Slate).Width(14)
	for _, row := range rows {
		if _, err := fmt.Fprintln(opts.Out, key.Render(row[0]+":")+row[1]); err != nil {
			return zerr.Wrap(err, "failed to write info")
		}
	}
	return nil
}
