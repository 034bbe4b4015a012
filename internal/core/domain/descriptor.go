package domain

import (
	"os"
	"strings"
)

// Search-path variables an installation can contribute to.
const (
	VarPath          = "PATH"
	VarPythonPath    = "PYTHONPATH"
	VarLibraryPath   = "LD_LIBRARY_PATH"
	VarManPath       = "MANPATH"
	VarPkgConfigPath = "PKG_CONFIG_PATH"
)

// PathEntry is a single directory to prepend to a search-path variable.
type PathEntry struct {
	Variable string `json:"variable"`
	Path     string `json:"path"`
}

// EnvironmentDescriptor lists the directories an installation prepends to search-path variables.
// Entries are ordered; for a given variable the earliest entry ends up first on lookup.
type EnvironmentDescriptor struct {
	Entries []PathEntry `json:"prepend"`
}

// Add appends an entry to the descriptor.
func (d *EnvironmentDescriptor) Add(variable, path string) {
	d.Entries = append(d.Entries, PathEntry{Variable: variable, Path: path})
}

// Has reports whether the descriptor contributes to variable.
func (d EnvironmentDescriptor) Has(variable string) bool {
	for _, e := range d.Entries {
		if e.Variable == variable {
			return true
		}
	}
	return false
}

// Paths returns the directories contributed to variable in descriptor order.
func (d EnvironmentDescriptor) Paths(variable string) []string {
	var paths []string
	for _, e := range d.Entries {
		if e.Variable == variable {
			paths = append(paths, e.Path)
		}
	}
	return paths
}

// Variables returns the distinct variables in order of first appearance.
func (d EnvironmentDescriptor) Variables() []string {
	seen := make(map[string]struct{}, len(d.Entries))
	vars := make([]string, 0, len(d.Entries))
	for _, e := range d.Entries {
		if _, ok := seen[e.Variable]; ok {
			continue
		}
		seen[e.Variable] = struct{}{}
		vars = append(vars, e.Variable)
	}
	return vars
}

// Apply prepends the descriptor to an environment given as "KEY=VALUE" strings.
// Existing values are kept after the new directories. The input slice is not modified.
func (d EnvironmentDescriptor) Apply(env []string) []string {
	result := make([]string, len(env))
	copy(result, env)

	index := make(map[string]int, len(result))
	for i, entry := range result {
		if k, _, ok := strings.Cut(entry, "="); ok {
			index[k] = i
		}
	}

	sep := string(os.PathListSeparator)
	for _, variable := range d.Variables() {
		prefix := strings.Join(d.Paths(variable), sep)

		i, ok := index[variable]
		if !ok {
			index[variable] = len(result)
			result = append(result, variable+"="+prefix)
			continue
		}

		_, current, _ := strings.Cut(result[i], "=")
		if current == "" {
			result[i] = variable + "=" + prefix
		} else {
			result[i] = variable + "=" + prefix + sep + current
		}
	}

	return result
}
