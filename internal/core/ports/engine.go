package ports

import (
	"context"

	"go.trai.ch/pkgmod/internal/core/domain"
)

// VersionResolver picks the release of a package to install.
type VersionResolver interface {
	// Resolve returns the greatest published release of name.
	Resolve(ctx context.Context, name string) (domain.ResolvedVersion, error)
}

// Materializer installs package versions below an install root and describes them.
type Materializer interface {
	// Materialize installs version of name below root unless it is already present.
	Materialize(ctx context.Context, name, version, root string) (domain.InstallationRecord, domain.InstallState, error)

	// Lookup returns the record of an existing installation or domain.ErrNotInstalled.
	Lookup(name, version, root string) (domain.InstallationRecord, error)

	// Describe returns the search-path entries contributed by an installation.
	Describe(record domain.InstallationRecord) domain.EnvironmentDescriptor

	// Installed lists the non-empty installations found below root.
	Installed(root string) ([]domain.InstallationRecord, error)
}
