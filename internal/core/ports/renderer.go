package ports

import (
	"io"

	"go.trai.ch/pkgmod/internal/core/domain"
)

// DescriptorRenderer writes an environment descriptor in a shell-consumable format.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type DescriptorRenderer interface {
	// Render writes the descriptor of record to w in the given format.
	// Unsupported formats are reported as domain.ErrUnknownFormat.
	Render(w io.Writer, format string, record domain.InstallationRecord, descriptor domain.EnvironmentDescriptor) error
}

// ModulefileWriter persists an Environment Modules file for an installation.
type ModulefileWriter interface {
	// Write stores the modulefile of record below dir and returns its path.
	Write(dir string, record domain.InstallationRecord, descriptor domain.EnvironmentDescriptor) (string, error)
}
