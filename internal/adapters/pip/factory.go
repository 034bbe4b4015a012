package pip

import (
	"slices"

	"go.trai.ch/pkgmod/internal/core/ports"
)

// Factory implements ports.InstallerFactory.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a Factory whose installers log their output through logger.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// NewInstaller validates command and returns an installer running it.
func (f *Factory) NewInstaller(command []string) (ports.Installer, error) {
	if err := validateCommand(command); err != nil {
		return nil, err
	}
	return NewInstaller(slices.Clone(command), f.logger), nil
}
