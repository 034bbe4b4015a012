// Package app implements the application layer for pkgmod.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/tabwriter"

	"go.trai.ch/pkgmod/internal/adapters/modulefile"
	"go.trai.ch/pkgmod/internal/adapters/telemetry"
	"go.trai.ch/pkgmod/internal/core/domain"
	"go.trai.ch/pkgmod/internal/core/ports"
	"go.trai.ch/pkgmod/internal/engine/materializer"
	"go.trai.ch/pkgmod/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	indexes      ports.IndexFactory
	installers   ports.InstallerFactory
	renderer     ports.DescriptorRenderer
	modulefiles  ports.ModulefileWriter
	executor     ports.Executor
	tracer       ports.Tracer
	workDir      string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	indexes ports.IndexFactory,
	installers ports.InstallerFactory,
	renderer ports.DescriptorRenderer,
	modulefiles ports.ModulefileWriter,
	executor ports.Executor,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		indexes:      indexes,
		installers:   installers,
		renderer:     renderer,
		modulefiles:  modulefiles,
		executor:     executor,
	}
}

// WithTracer makes the App report spans to tracer instead of the global
// OpenTelemetry provider. This is primarily used for testing.
func (a *App) WithTracer(tracer ports.Tracer) *App {
	a.tracer = tracer
	return a
}

// WithWorkDir sets the directory configuration discovery starts from.
// It defaults to the process working directory.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// Options holds the settings shared by every command.
type Options struct {
	// ConfigPath is an explicit config file, empty to discover pkgmod.yaml.
	ConfigPath string
	// Root overrides the configured install root.
	Root string
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	Options
	Refresh bool
}

// InstallOptions configuration for the Install method.
type InstallOptions struct {
	Options
	Format      string
	Modulefiles string
	Jobs        int
	Refresh     bool
}

// DescribeOptions configuration for the Describe method.
type DescribeOptions struct {
	Options
	Format string
}

type verbosity interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// ConfigureLogging switches the logger between debug and JSON output when it supports it.
func (a *App) ConfigureLogging(verbose, jsonLogs bool) {
	if v, ok := a.logger.(verbosity); ok {
		v.SetVerbose(verbose)
		v.SetJSON(jsonLogs)
	}
}

// Resolve prints the latest release of name.
func (a *App) Resolve(ctx context.Context, out io.Writer, name string, opts ResolveOptions) error {
	cfg, err := a.loadConfig(opts.Options)
	if err != nil {
		return err
	}

	tracer, shutdown := a.startTelemetry()
	defer shutdown()

	index, err := a.indexes.NewIndex(cfg.Index, opts.Refresh)
	if err != nil {
		return err
	}

	resolved, err := resolver.New(index, tracer).Resolve(ctx, name)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve package")
	}

	_, err = fmt.Fprintf(out, "%s %s\n", resolved.Name, resolved.Version)
	return err
}

// Describe renders the environment descriptor of an existing installation.
func (a *App) Describe(_ context.Context, out io.Writer, name, version string, opts DescribeOptions) error {
	if err := checkFormat(opts.Format); err != nil {
		return err
	}

	cfg, err := a.loadConfig(opts.Options)
	if err != nil {
		return err
	}

	m := materializer.New(nil, telemetry.NewNoOpTracer())
	record, err := m.Lookup(name, version, cfg.Root)
	if err != nil {
		return err
	}

	return a.renderer.Render(out, opts.Format, record, m.Describe(record))
}

// List prints every installation found below the install root.
func (a *App) List(_ context.Context, out io.Writer, opts Options) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	records, err := materializer.New(nil, telemetry.NewNoOpTracer()).Installed(cfg.Root)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		a.logger.Info("no packages installed in " + cfg.Root)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, r := range records {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name, r.Version, r.Root)
	}
	return w.Flush()
}

// Exec runs argv with the environment of an existing installation applied.
func (a *App) Exec(ctx context.Context, stdout, stderr io.Writer, name, version string, argv []string, opts Options) error {
	if len(argv) == 0 {
		return domain.ErrNoCommand
	}

	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	m := materializer.New(nil, telemetry.NewNoOpTracer())
	record, err := m.Lookup(name, version, cfg.Root)
	if err != nil {
		return err
	}

	env := m.Describe(record).Apply(os.Environ())
	return a.executor.Run(ctx, argv, env, stdout, stderr)
}

// loadConfig reads the configuration and applies command line overrides.
func (a *App) loadConfig(opts Options) (domain.Config, error) {
	cwd, err := a.cwd()
	if err != nil {
		return domain.Config{}, err
	}

	cfg, err := a.configLoader.Load(cwd, opts.ConfigPath)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Root != "" {
		cfg.Root = absPath(cwd, opts.Root)
	}
	return cfg, nil
}

func (a *App) cwd() (string, error) {
	if a.workDir != "" {
		return a.workDir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to determine working directory")
	}
	return wd, nil
}

// startTelemetry returns the tracer for one command and a function flushing it.
func (a *App) startTelemetry() (ports.Tracer, func()) {
	if a.tracer != nil {
		return a.tracer, func() {}
	}

	shutdown := telemetry.Setup(telemetry.NewLogBridge(a.logger))
	return telemetry.NewOTelTracer("pkgmod"), func() {
		_ = shutdown(context.Background())
	}
}

func checkFormat(format string) error {
	if !slices.Contains(modulefile.Formats(), format) {
		return zerr.With(zerr.Wrap(domain.ErrUnknownFormat, "cannot render descriptor"), "format", format)
	}
	return nil
}

func absPath(cwd, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(cwd, path)
}

// parseSpec splits "name==version" into its parts. A bare name has no version.
func parseSpec(spec string) (name, version string) {
	name, version, _ = strings.Cut(spec, "==")
	return strings.TrimSpace(name), strings.TrimSpace(version)
}
