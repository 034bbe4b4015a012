package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/pkgmod/internal/core/domain"
	"go.trai.ch/pkgmod/internal/core/ports"
	"go.trai.ch/pkgmod/internal/engine/materializer"
	"go.trai.ch/pkgmod/internal/engine/resolver"
	"go.trai.ch/pkgmod/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

type installResult struct {
	record     domain.InstallationRecord
	descriptor domain.EnvironmentDescriptor
	state      domain.InstallState
	err        error
}

// Install resolves and materializes every spec and renders the resulting
// descriptors to out in argument order.
//
// A spec is a package name or name==version. Up to opts.Jobs packages are
// installed at once; a failing package does not stop the others.
func (a *App) Install(ctx context.Context, out io.Writer, specs []string, opts InstallOptions) error {
	if len(specs) == 0 {
		return nil
	}
	if err := checkFormat(opts.Format); err != nil {
		return err
	}

	cfg, err := a.loadConfig(opts.Options)
	if err != nil {
		return err
	}
	if opts.Modulefiles != "" {
		cwd, err := a.cwd()
		if err != nil {
			return err
		}
		cfg.Modulefiles = absPath(cwd, opts.Modulefiles)
	}

	// The workspace default is created on demand; a configured root must already exist.
	if cfg.Path == "" && opts.Root == "" {
		if err := os.MkdirAll(cfg.Root, domain.SharedDirPerm); err != nil {
			return zerr.With(errors.Join(domain.ErrInstallRootUnavailable, err), "path", cfg.Root)
		}
	}

	tracer, shutdown := a.startTelemetry()
	defer shutdown()

	index, err := a.indexes.NewIndex(cfg.Index, opts.Refresh)
	if err != nil {
		return err
	}
	installer, err := a.installers.NewInstaller(cfg.InstallerCommand)
	if err != nil {
		return err
	}

	res := resolver.New(index, tracer)
	mat := materializer.New(installer, tracer)

	results := make([]installResult, len(specs))
	var g errgroup.Group
	g.SetLimit(max(opts.Jobs, 1))
	for i, spec := range specs {
		g.Go(func() error {
			results[i] = a.installOne(ctx, res, mat, cfg, spec)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}

		a.logger.Info(style.Status(true, fmt.Sprintf("%s %s %s", r.record.Name, r.record.Version, r.state)))
		if err := a.renderer.Render(out, opts.Format, r.record, r.descriptor); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (a *App) installOne(
	ctx context.Context,
	res ports.VersionResolver,
	mat ports.Materializer,
	cfg domain.Config,
	spec string,
) installResult {
	name, version := parseSpec(spec)
	if version == "" {
		resolved, err := res.Resolve(ctx, name)
		if err != nil {
			return installResult{err: zerr.Wrap(err, "failed to resolve package")}
		}
		version = resolved.Version
		a.logger.Debug(fmt.Sprintf("resolved %s to %s", name, version))
	}

	record, state, err := mat.Materialize(ctx, name, version, cfg.Root)
	if err != nil {
		return installResult{state: state, err: zerr.Wrap(err, "failed to install package")}
	}
	descriptor := mat.Describe(record)

	if cfg.Modulefiles != "" {
		path, err := a.modulefiles.Write(cfg.Modulefiles, record, descriptor)
		if err != nil {
			return installResult{state: state, err: err}
		}
		a.logger.Debug("wrote modulefile " + path)
	}

	return installResult{record: record, descriptor: descriptor, state: state}
}
