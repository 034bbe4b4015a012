package ports

import "go.trai.ch/pkgmod/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=factory.go -destination=mocks/mock_factory.go -package=mocks

// IndexFactory creates package index clients from configuration.
type IndexFactory interface {
	// NewIndex returns a client for the configured index.
	// With refresh set, cached release lists are ignored and overwritten.
	NewIndex(cfg domain.IndexConfig, refresh bool) (PackageIndex, error)
}

// InstallerFactory creates installers from an argv template.
type InstallerFactory interface {
	// NewInstaller returns an installer that runs command for every install.
	NewInstaller(command []string) (Installer, error)
}
