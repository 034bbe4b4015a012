// Package materializer installs package versions below an install root.
package materializer

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/pkgmod/internal/core/domain"
	"go.trai.ch/pkgmod/internal/core/ports"
	"go.trai.ch/zerr"
)

// Materializer implements ports.Materializer.
//
// An installation lives at root/name/version and is created by running the
// installer in a private staging directory next to it, which is renamed onto
// the final path only once the installer succeeded.
type Materializer struct {
	installer ports.Installer
	tracer    ports.Tracer
}

var _ ports.Materializer = (*Materializer)(nil)

// New creates a Materializer that runs installer for missing versions.
func New(installer ports.Installer, tracer ports.Tracer) *Materializer {
	return &Materializer{installer: installer, tracer: tracer}
}

// Materialize installs version of name below root unless it is already present.
func (m *Materializer) Materialize(
	ctx context.Context,
	name, version, root string,
) (domain.InstallationRecord, domain.InstallState, error) {
	if err := domain.ValidatePackageName(name); err != nil {
		return domain.InstallationRecord{}, domain.StateFailed, err
	}
	if err := domain.ValidateVersion(version); err != nil {
		return domain.InstallationRecord{}, domain.StateFailed, err
	}
	if err := checkRoot(root); err != nil {
		return domain.InstallationRecord{}, domain.StateFailed, err
	}

	record := domain.NewInstallationRecord(root, name, version)
	installed, err := isInstalled(record.Root)
	if err != nil {
		return domain.InstallationRecord{}, domain.StateFailed, err
	}
	if installed {
		return record, domain.StateAlreadyInstalled, nil
	}

	ctx, span := m.tracer.Start(ctx, "install "+name+"=="+version,
		ports.WithAttribute("package", name),
		ports.WithAttribute("version", version),
	)
	defer span.End()

	state, err := m.install(ctx, span, record, root)
	if err != nil {
		span.RecordError(err)
		return domain.InstallationRecord{}, domain.StateFailed, err
	}
	span.SetAttribute("state", state.String())

	return record, state, nil
}

func (m *Materializer) install(
	ctx context.Context,
	span ports.Span,
	record domain.InstallationRecord,
	root string,
) (domain.InstallState, error) {
	packageDir := filepath.Join(root, record.Name)
	if err := os.MkdirAll(packageDir, domain.SharedDirPerm); err != nil {
		return domain.StateFailed, zerr.With(errors.Join(domain.ErrInstallationFailed, err), "path", packageDir)
	}

	unlock, err := acquireLock(root, record.Name, record.Version)
	if err != nil {
		return domain.StateFailed, err
	}
	defer unlock()

	installed, err := isInstalled(record.Root)
	if err != nil {
		return domain.StateFailed, err
	}
	if installed {
		return domain.StateAlreadyInstalled, nil
	}

	staging, err := os.MkdirTemp(packageDir, domain.StagingPattern(record.Version))
	if err != nil {
		return domain.StateFailed, zerr.With(errors.Join(domain.ErrInstallationFailed, err), "path", packageDir)
	}
	// Runs on every return path, including a panicking installer.
	defer func() {
		_ = os.RemoveAll(staging)
	}()

	diagnostics, err := m.runInstaller(ctx, record, staging)
	if len(diagnostics) > 0 {
		_, _ = span.Write(diagnostics)
	}
	if err != nil {
		failure := zerr.With(errors.Join(domain.ErrInstallationFailed, err), "package", record.Name)
		failure = zerr.With(failure, "version", record.Version)
		return domain.StateFailed, zerr.With(failure, "diagnostics", string(diagnostics))
	}

	populated, err := isInstalled(staging)
	if err != nil {
		return domain.StateFailed, err
	}
	if !populated {
		failure := zerr.With(zerr.Wrap(domain.ErrInstallationFailed, "installer produced no files"), "package", record.Name)
		failure = zerr.With(failure, "version", record.Version)
		return domain.StateFailed, zerr.With(failure, "diagnostics", string(diagnostics))
	}

	if err := promote(staging, record.Root); err != nil {
		return domain.StateFailed, err
	}

	return domain.StateInstalled, nil
}

// runInstaller turns a panicking installer into an ordinary error.
func (m *Materializer) runInstaller(
	ctx context.Context,
	record domain.InstallationRecord,
	staging string,
) (diagnostics []byte, err error) {
	defer zerr.Defer(func(recovered error) {
		err = zerr.Wrap(recovered, "installer crashed")
	})
	return m.installer.Install(ctx, record.Name, record.Version, staging)
}

// Lookup returns the record of an existing installation.
func (m *Materializer) Lookup(name, version, root string) (domain.InstallationRecord, error) {
	if err := domain.ValidatePackageName(name); err != nil {
		return domain.InstallationRecord{}, err
	}
	if err := domain.ValidateVersion(version); err != nil {
		return domain.InstallationRecord{}, err
	}

	record := domain.NewInstallationRecord(root, name, version)
	installed, err := isInstalled(record.Root)
	if err != nil {
		return domain.InstallationRecord{}, err
	}
	if !installed {
		notInstalled := zerr.With(zerr.Wrap(domain.ErrNotInstalled, "no installation found"), "package", name)
		notInstalled = zerr.With(notInstalled, "version", version)
		return domain.InstallationRecord{}, zerr.With(notInstalled, "path", record.Root)
	}
	return record, nil
}

// Installed lists every non-empty installation below root ordered by name and version.
func (m *Materializer) Installed(root string) ([]domain.InstallationRecord, error) {
	if err := checkRoot(root); err != nil {
		return nil, err
	}

	packages, err := os.ReadDir(root)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrInstallRootUnavailable, err), "path", root)
	}

	var records []domain.InstallationRecord
	for _, pkg := range packages {
		if !pkg.IsDir() || domain.ValidatePackageName(pkg.Name()) != nil {
			continue
		}

		versions, err := os.ReadDir(filepath.Join(root, pkg.Name()))
		if err != nil {
			return nil, zerr.With(errors.Join(domain.ErrInstallRootUnavailable, err), "path", filepath.Join(root, pkg.Name()))
		}

		for _, v := range versions {
			if !v.IsDir() || domain.ValidateVersion(v.Name()) != nil {
				continue
			}
			record := domain.NewInstallationRecord(root, pkg.Name(), v.Name())
			if ok, err := isInstalled(record.Root); err != nil || !ok {
				continue
			}
			records = append(records, record)
		}
	}

	slices.SortFunc(records, func(a, b domain.InstallationRecord) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return domain.CompareVersions(a.Version, b.Version)
	})

	return records, nil
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrInstallRootUnavailable, err), "path", root)
	}
	if !info.IsDir() {
		return zerr.With(zerr.Wrap(domain.ErrInstallRootUnavailable, "not a directory"), "path", root)
	}
	return nil
}

// isInstalled reports whether path is a directory with at least one entry.
func isInstalled(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, zerr.With(errors.Join(domain.ErrInstallationFailed, err), "path", path)
	}
	return len(entries) > 0, nil
}

// acquireLock takes the exclusive install lock for a version.
// The lock is a directory because creating one is atomic on every platform.
func acquireLock(root, name, version string) (func(), error) {
	lock := domain.LockPath(root, name, version)
	if err := os.Mkdir(lock, domain.DirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			inProgress := zerr.With(zerr.Wrap(domain.ErrInstallInProgress, "install lock is held"), "package", name)
			inProgress = zerr.With(inProgress, "version", version)
			return nil, zerr.With(inProgress, "lock", lock)
		}
		return nil, zerr.With(errors.Join(domain.ErrInstallationFailed, err), "lock", lock)
	}

	return func() {
		_ = os.Remove(lock)
	}, nil
}

// promote moves a finished staging directory onto the install path.
func promote(staging, target string) error {
	if err := os.Chmod(staging, domain.SharedDirPerm); err != nil {
		return zerr.With(errors.Join(domain.ErrInstallationFailed, err), "path", staging)
	}

	// An empty target directory counts as not installed and is replaced.
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(errors.Join(domain.ErrInstallationFailed, err), "path", target)
	}

	if err := os.Rename(staging, target); err != nil {
		return zerr.With(errors.Join(domain.ErrInstallationFailed, err), "path", target)
	}
	return nil
}
