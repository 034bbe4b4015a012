// Package resolver selects the release of a package to install.
package resolver

import (
	"context"

	"go.trai.ch/pkgmod/internal/core/domain"
	"go.trai.ch/pkgmod/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver implements ports.VersionResolver on top of a package index.
type Resolver struct {
	index  ports.PackageIndex
	tracer ports.Tracer
}

var _ ports.VersionResolver = (*Resolver)(nil)

// New creates a Resolver that queries index.
func New(index ports.PackageIndex, tracer ports.Tracer) *Resolver {
	return &Resolver{index: index, tracer: tracer}
}

// Resolve returns the greatest release the index publishes for name.
// Releases are ordered by their numeric dot components, so 1.10.0 wins over 1.2.0.
func (r *Resolver) Resolve(ctx context.Context, name string) (domain.ResolvedVersion, error) {
	if err := domain.ValidatePackageName(name); err != nil {
		return domain.ResolvedVersion{}, err
	}

	ctx, span := r.tracer.Start(ctx, "resolve "+name, ports.WithAttribute("package", name))
	defer span.End()

	releases, err := r.index.Releases(ctx, name)
	if err != nil {
		span.RecordError(err)
		return domain.ResolvedVersion{}, err
	}
	span.SetAttribute("releases", len(releases))

	latest, ok := domain.LatestVersion(releases)
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "no releases published"), "package", name)
		span.RecordError(err)
		return domain.ResolvedVersion{}, err
	}
	span.SetAttribute("version", latest)

	return domain.ResolvedVersion{Name: name, Version: latest}, nil
}
