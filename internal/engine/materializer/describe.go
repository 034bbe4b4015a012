package materializer

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/pkgmod/internal/core/domain"
)

// searchPath maps a variable to the installation subdirectories it can receive.
type searchPath struct {
	variable string
	patterns []string
}

// searchPaths is ordered; Describe emits entries in exactly this order.
// Patterns are slash-separated and relative to the installation root.
var searchPaths = []searchPath{
	{variable: domain.VarPath, patterns: []string{"bin"}},
	{variable: domain.VarPythonPath, patterns: []string{
		"lib/python*/site-packages",
		"lib64/python*/site-packages",
	}},
	{variable: domain.VarLibraryPath, patterns: []string{"lib", "lib64"}},
	{variable: domain.VarManPath, patterns: []string{"share/man", "man"}},
	{variable: domain.VarPkgConfigPath, patterns: []string{"lib/pkgconfig"}},
}

// Describe returns the search-path entries contributed by an installation.
// Only directories that exist below record.Root are listed.
func (m *Materializer) Describe(record domain.InstallationRecord) domain.EnvironmentDescriptor {
	var descriptor domain.EnvironmentDescriptor
	for _, sp := range searchPaths {
		var dirs []string
		for _, pattern := range sp.patterns {
			dirs = append(dirs, existingDirs(record.Root, pattern)...)
		}
		if sp.variable == domain.VarPythonPath {
			slices.Sort(dirs)
		}
		for _, dir := range dirs {
			descriptor.Add(sp.variable, dir)
		}
	}
	return descriptor
}

// existingDirs expands pattern below root and keeps the matches that are directories.
// Only pattern is matched; root is taken literally even if it holds glob metacharacters.
func existingDirs(root, pattern string) []string {
	matches, err := fs.Glob(os.DirFS(root), pattern)
	if err != nil {
		return nil
	}

	dirs := make([]string, 0, len(matches))
	for _, match := range matches {
		dir := filepath.Join(root, filepath.FromSlash(match))
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
