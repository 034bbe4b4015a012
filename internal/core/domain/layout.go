package domain

import "path/filepath"

const (
	// PkgmodDirName is the name of the internal workspace directory.
	PkgmodDirName = ".pkgmod"

	// PackagesDirName is the name of the default install root below the workspace directory.
	PackagesDirName = "packages"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// IndexDirName is the name of the release list cache directory.
	IndexDirName = "index"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "pkgmod.yaml"

	// LockSuffix is appended to a version to name its install lock directory.
	LockSuffix = ".lock"

	// StagingInfix separates a version from the random part of its staging directory name.
	StagingInfix = ".staging-"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// SharedDirPerm is the permission for install directories that other users load modules from (rwxr-xr-x).
	SharedDirPerm = 0o755

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultPkgmodPath returns the default root directory for pkgmod metadata.
func DefaultPkgmodPath() string {
	return PkgmodDirName
}

// DefaultInstallRoot returns the default install root.
// It joins .pkgmod and packages.
func DefaultInstallRoot() string {
	return filepath.Join(PkgmodDirName, PackagesDirName)
}

// DefaultIndexCachePath returns the default path for the release list cache.
// It joins .pkgmod, cache, and index.
func DefaultIndexCachePath() string {
	return filepath.Join(PkgmodDirName, CacheDirName, IndexDirName)
}

// InstallPath returns the deterministic install location of a package version.
func InstallPath(root, name, version string) string {
	return filepath.Join(root, name, version)
}

// LockPath returns the exclusive lock directory guarding an install of a package version.
func LockPath(root, name, version string) string {
	return filepath.Join(root, name, "."+version+LockSuffix)
}

// StagingPattern returns the os.MkdirTemp pattern used for staging an install of a version.
func StagingPattern(version string) string {
	return "." + version + StagingInfix + "*"
}
