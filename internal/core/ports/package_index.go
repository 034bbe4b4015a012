// Package ports defines the core interfaces for the application.
package ports

import "context"

// PackageIndex enumerates the published releases of a package.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_index.go -destination=mocks/mock_package_index.go -package=mocks
type PackageIndex interface {
	// Releases returns every installable release identifier of the named package,
	// in whatever order the index reports them.
	//
	// An unknown package yields an empty list and no error. Transport and
	// protocol failures are reported as domain.ErrIndexUnavailable.
	Releases(ctx context.Context, name string) ([]string, error)
}
