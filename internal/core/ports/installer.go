package ports

import "context"

// Installer installs an exact package version into a directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// Install places the given version of the package into targetDir, which already exists.
	//
	// The returned diagnostics hold the installer's combined output and are
	// returned even when err is non-nil.
	Install(ctx context.Context, name, version, targetDir string) (diagnostics []byte, err error)
}
