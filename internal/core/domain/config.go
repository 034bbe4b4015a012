package domain

import "time"

// Index kinds understood by the package index adapter.
const (
	// IndexKindJSON is the per-project JSON API served at {url}/{name}/json.
	IndexKindJSON = "json"
	// IndexKindSimple is the JSON flavour of the simple repository API served at {url}/{name}/.
	IndexKindSimple = "simple"
)

const (
	// DefaultIndexURL is the base URL of the public Python package index JSON API.
	DefaultIndexURL = "https://pypi.org/pypi"

	// DefaultIndexTimeout bounds a single index request.
	DefaultIndexTimeout = 30 * time.Second

	// DefaultCacheTTL is how long a cached release list is trusted.
	DefaultCacheTTL = time.Hour
)

// DefaultInstallerCommand is the argv template used to install a package version.
// {name}, {version} and {target} are substituted per argument.
func DefaultInstallerCommand() []string {
	return []string{
		"python3", "-m", "pip", "install",
		"--prefix", "{target}",
		"--ignore-installed",
		"--no-deps",
		"--no-warn-script-location",
		"--disable-pip-version-check",
		"{name}=={version}",
	}
}

// IndexConfig configures the package index client.
type IndexConfig struct {
	URL      string
	Kind     string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Config is the resolved tool configuration.
type Config struct {
	// Root is the install root below which packages are materialized.
	Root string

	// Modulefiles is the directory receiving Environment Modules files, empty to disable.
	Modulefiles string

	// Index configures where releases are looked up.
	Index IndexConfig

	// InstallerCommand is the argv template of the external installer.
	InstallerCommand []string

	// Path is the file the configuration was read from, empty when defaults are used.
	Path string
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Root: DefaultInstallRoot(),
		Index: IndexConfig{
			URL:      DefaultIndexURL,
			Kind:     IndexKindJSON,
			Timeout:  DefaultIndexTimeout,
			CacheTTL: DefaultCacheTTL,
		},
		InstallerCommand: DefaultInstallerCommand(),
	}
}
