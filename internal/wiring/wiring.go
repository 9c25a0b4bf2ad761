// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ccflags/internal/adapters/compdb"
	_ "go.trai.ch/ccflags/internal/adapters/config"
	_ "go.trai.ch/ccflags/internal/adapters/fs"
	_ "go.trai.ch/ccflags/internal/adapters/logger"
	_ "go.trai.ch/ccflags/internal/adapters/telemetry"
	_ "go.trai.ch/ccflags/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/ccflags/internal/app"
)
