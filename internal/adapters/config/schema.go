package config

// Pkgmodfile represents the structure of the pkgmod.yaml configuration file.
type Pkgmodfile struct {
	Version     string       `yaml:"version"`
	Root        string       `yaml:"root"`
	Modulefiles string       `yaml:"modulefiles"`
	Index       IndexDTO     `yaml:"index"`
	Installer   InstallerDTO `yaml:"installer"`
}

// IndexDTO represents the package index section.
// Durations are kept as strings so "0" and "1h" parse alike.
type IndexDTO struct {
	URL      string `yaml:"url"`
	Kind     string `yaml:"kind"`
	Timeout  string `yaml:"timeout"`
	CacheTTL string `yaml:"cache_ttl"`
}

// InstallerDTO represents the installer section.
type InstallerDTO struct {
	Command []string `yaml:"command"`
}
