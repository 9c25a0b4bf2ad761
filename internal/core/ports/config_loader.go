package ports

import "go.trai.ch/ccflags/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration file starting at cwd and walking up, and returns
	// the settings it describes.
	Load(cwd string) (*domain.Settings, error)

	// LoadFile reads the settings from an explicit configuration file.
	LoadFile(path string) (*domain.Settings, error)
}
