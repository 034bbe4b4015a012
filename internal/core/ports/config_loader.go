package ports

import "go.trai.ch/pkgmod/internal/core/domain"

// ConfigLoader defines the interface for loading the tool configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load looks for the configuration file starting at cwd and walking up.
	// When explicit is non-empty that file is read instead and must exist.
	// Missing discovery results in domain.DefaultConfig.
	Load(cwd, explicit string) (domain.Config, error)
}
