package app

import "go.trai.ch/ccflags/internal/core/ports"

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App     *App
	Logger  ports.Logger
	Watcher ports.Watcher
}

// Close releases resources held by the components.
func (c *Components) Close() {
	if c.Watcher != nil {
		_ = c.Watcher.Stop()
	}
}
