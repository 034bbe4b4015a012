// Package config provides the configuration loader for pkgmod.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/pkgmod/internal/core/domain"
	"go.trai.ch/pkgmod/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// supportedVersion is the only config schema version understood.
const supportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load returns the configuration for cwd.
//
// An explicit path must exist. Otherwise pkgmod.yaml is searched from cwd
// upwards and defaults are used when none is found. Relative paths in the
// file are resolved against the directory holding it.
func (l *Loader) Load(cwd, explicit string) (domain.Config, error) {
	configPath := explicit
	if configPath == "" {
		configPath = findConfiguration(cwd)
	} else if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(cwd, configPath)
	}

	if configPath == "" {
		l.Logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
		cfg := domain.DefaultConfig()
		cfg.Root = resolvePath(cwd, cfg.Root)
		return cfg, nil
	}

	var file Pkgmodfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}

	cfg, err := buildConfig(configPath, &file)
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}

	l.Logger.Debug(fmt.Sprintf("loaded configuration from %s", configPath))
	return cfg, nil
}

// findConfiguration walks up from cwd and returns the first config file found.
func findConfiguration(cwd string) string {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

func buildConfig(configPath string, file *Pkgmodfile) (domain.Config, error) {
	if file.Version != "" && file.Version != supportedVersion {
		return domain.Config{}, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unsupported config version"), "version", file.Version)
	}

	cfg := domain.DefaultConfig()
	cfg.Path = configPath
	configDir := filepath.Dir(configPath)

	if file.Root != "" {
		cfg.Root = file.Root
	}
	cfg.Root = resolvePath(configDir, cfg.Root)

	if file.Modulefiles != "" {
		cfg.Modulefiles = resolvePath(configDir, file.Modulefiles)
	}

	if file.Index.URL != "" {
		cfg.Index.URL = file.Index.URL
	}

	switch file.Index.Kind {
	case "":
	case domain.IndexKindJSON, domain.IndexKindSimple:
		cfg.Index.Kind = file.Index.Kind
	default:
		return domain.Config{}, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "index kind must be 'json' or 'simple'"), "kind", file.Index.Kind)
	}

	if file.Index.Timeout != "" {
		timeout, err := parseDuration("index.timeout", file.Index.Timeout)
		if err != nil {
			return domain.Config{}, err
		}
		if timeout <= 0 {
			return domain.Config{}, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "index.timeout must be positive"), "value", file.Index.Timeout)
		}
		cfg.Index.Timeout = timeout
	}

	if file.Index.CacheTTL != "" {
		ttl, err := parseDuration("index.cache_ttl", file.Index.CacheTTL)
		if err != nil {
			return domain.Config{}, err
		}
		if ttl < 0 {
			return domain.Config{}, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "index.cache_ttl must not be negative"), "value", file.Index.CacheTTL)
		}
		cfg.Index.CacheTTL = ttl
	}

	if file.Installer.Command != nil {
		if len(file.Installer.Command) == 0 {
			return domain.Config{}, zerr.Wrap(domain.ErrInvalidConfig, "installer.command must not be empty")
		}
		cfg.InstallerCommand = file.Installer.Command
	}

	return cfg, nil
}

func parseDuration(field, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, zerr.With(errors.Join(domain.ErrInvalidConfig, err), "field", field)
	}
	return d, nil
}

// resolvePath makes path absolute relative to dir.
func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(dir, path))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
// Unknown keys are rejected.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Join(domain.ErrConfigReadFailed, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return errors.Join(domain.ErrConfigParseFailed, parseErr)
	}

	return nil
}
