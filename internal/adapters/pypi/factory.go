package pypi

import (
	"net/http"
	"net/url"

	"go.trai.ch/pkgmod/internal/core/domain"
	"go.trai.ch/pkgmod/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factory implements ports.IndexFactory.
type Factory struct {
	logger   ports.Logger
	cacheDir string
	client   *http.Client
}

// NewFactory creates a Factory caching release lists below the default cache directory.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger, cacheDir: domain.DefaultIndexCachePath()}
}

// WithCacheDir overrides the release cache directory.
func (f *Factory) WithCacheDir(dir string) *Factory {
	f.cacheDir = dir
	return f
}

// WithHTTPClient makes every created index use client instead of one built from the timeout.
func (f *Factory) WithHTTPClient(client *http.Client) *Factory {
	f.client = client
	return f
}

// NewIndex returns a client for the configured index, cached unless the TTL is zero.
func (f *Factory) NewIndex(cfg domain.IndexConfig, refresh bool) (ports.PackageIndex, error) {
	if cfg.Kind != domain.IndexKindJSON && cfg.Kind != domain.IndexKindSimple {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unknown index kind"), "kind", cfg.Kind)
	}

	u, err := url.Parse(cfg.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "index url must be absolute"), "url", cfg.URL)
	}

	client := f.client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	index := NewClient(cfg.URL, cfg.Kind, client)
	if cfg.CacheTTL <= 0 {
		return index, nil
	}

	return NewCachedIndex(index, f.logger, f.cacheDir, cfg.Kind+" "+cfg.URL, cfg.CacheTTL, refresh), nil
}
