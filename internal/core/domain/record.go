package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ResolvedVersion is the release chosen for a package.
type ResolvedVersion struct {
	Name    string
	Version string
}

// InstallationRecord describes a materialized package version.
// Root is always InstallPath(root, Name, Version).
type InstallationRecord struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Root    string `json:"root"`
}

// NewInstallationRecord derives the record for a package version below an install root.
func NewInstallationRecord(root, name, version string) InstallationRecord {
	return InstallationRecord{
		Name:    name,
		Version: version,
		Root:    InstallPath(root, name, version),
	}
}

// InstallState is the terminal state of a single materialize call.
type InstallState int

const (
	// StateFailed means the installer did not succeed and the staging area was removed.
	StateFailed InstallState = iota
	// StateAlreadyInstalled means a non-empty install was found and the installer was not run.
	StateAlreadyInstalled
	// StateInstalled means the installer ran and its output was moved into place.
	StateInstalled
)

// String returns a human-readable name of the state.
func (s InstallState) String() string {
	switch s {
	case StateAlreadyInstalled:
		return "already installed"
	case StateInstalled:
		return "installed"
	default:
		return "failed"
	}
}

// ValidatePackageName rejects names that cannot be used as a single path element.
func ValidatePackageName(name string) error {
	if !isPathElement(name) {
		return zerr.With(zerr.Wrap(ErrInvalidPackageName, "package name must be a single path element"), "package", name)
	}
	return nil
}

// ValidateVersion rejects version tokens that cannot be used as a single path element.
func ValidateVersion(version string) error {
	if !isPathElement(version) {
		return zerr.With(zerr.Wrap(ErrInvalidVersion, "version must be a single path element"), "version", version)
	}
	return nil
}

// isPathElement reports whether s names exactly one visible directory entry.
// Dot-prefixed entries are reserved for lock and staging directories.
// Control characters are never part of a release token.
func isPathElement(s string) bool {
	if s == "" || strings.HasPrefix(s, ".") {
		return false
	}
	return !strings.ContainsFunc(s, func(r rune) bool {
		return r == '/' || r == '\\' || r < 0x20 || r == 0x7f
	})
}
