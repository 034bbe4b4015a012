package domain

import "go.trai.ch/zerr"

var (
	// ErrPackageNotFound is returned when the index publishes no releases for a package.
	ErrPackageNotFound = zerr.New("package not found in index")

	// ErrIndexUnavailable is returned when the package index cannot be reached or answers with garbage.
	ErrIndexUnavailable = zerr.New("package index unavailable")

	// ErrInvalidVersion is returned when a version token is empty or could escape the install root.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrInvalidPackageName is returned when a package name is empty or could escape the install root.
	ErrInvalidPackageName = zerr.New("invalid package name")

	// ErrInstallationFailed is returned when the external installer does not succeed.
	ErrInstallationFailed = zerr.New("installation failed")

	// ErrInstallInProgress is returned when another process holds the install lock for the same version.
	ErrInstallInProgress = zerr.New("installation already in progress")

	// ErrInstallRootUnavailable is returned when the install root is missing or not a directory.
	ErrInstallRootUnavailable = zerr.New("install root is not an existing directory")

	// ErrNotInstalled is returned when a package version has not been materialized under the root.
	ErrNotInstalled = zerr.New("package version is not installed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the config file holds an unusable value.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrCacheReadFailed is returned when reading from the release cache fails.
	ErrCacheReadFailed = zerr.New("failed to read from release cache")

	// ErrCacheWriteFailed is returned when writing to the release cache fails.
	ErrCacheWriteFailed = zerr.New("failed to write to release cache")

	// ErrModulefileWriteFailed is returned when a modulefile cannot be written.
	ErrModulefileWriteFailed = zerr.New("failed to write modulefile")

	// ErrUnknownFormat is returned when a descriptor output format is not supported.
	ErrUnknownFormat = zerr.New("unknown output format, expected 'sh', 'tcl' or 'json'")

	// ErrNoCommand is returned when exec is invoked without a command to run.
	ErrNoCommand = zerr.New("no command specified")

	// ErrCommandFailed is returned when a command run through exec exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")
)
