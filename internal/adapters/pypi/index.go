// Package pypi implements the PackageIndex port against Python package indexes.
package pypi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"go.trai.ch/pkgmod/internal/core/domain"
	"go.trai.ch/zerr"
)

var nameSeparators = regexp.MustCompile(`[-_.]+`)

// Client implements ports.PackageIndex over HTTP.
type Client struct {
	baseURL    string
	kind       string
	httpClient *http.Client
}

// NewClient creates a Client for the index at baseURL speaking the given API kind.
func NewClient(baseURL, kind string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		kind:       kind,
		httpClient: httpClient,
	}
}

// Releases returns every installable release the index publishes for name.
// An unknown project yields an empty list and no error.
func (c *Client) Releases(ctx context.Context, name string) ([]string, error) {
	if c.kind == domain.IndexKindSimple {
		return c.simpleReleases(ctx, name)
	}
	return c.jsonReleases(ctx, name)
}

func (c *Client) jsonReleases(ctx context.Context, name string) ([]string, error) {
	var resp projectResponse
	found, err := c.get(ctx, name, c.baseURL+"/"+url.PathEscape(name)+"/json", "application/json", &resp)
	if err != nil || !found {
		return nil, err
	}

	releases := make([]string, 0, len(resp.Releases))
	for version, files := range resp.Releases {
		if installable(files) {
			releases = append(releases, version)
		}
	}
	return releases, nil
}

func (c *Client) simpleReleases(ctx context.Context, name string) ([]string, error) {
	var resp simpleResponse
	found, err := c.get(ctx, name, c.baseURL+"/"+normalizeName(name)+"/", simpleContentType, &resp)
	if err != nil || !found {
		return nil, err
	}

	if resp.Versions == nil {
		missing := zerr.With(zerr.Wrap(domain.ErrIndexUnavailable, "simple index response lists no versions"), "package", name)
		return nil, zerr.With(missing, "api_version", resp.Meta.APIVersion)
	}
	return resp.Versions, nil
}

// get fetches target and decodes it into out. It reports false for a 404.
func (c *Client) get(ctx context.Context, name, target, accept string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return false, zerr.With(errors.Join(domain.ErrIndexUnavailable, err), "package", name)
	}
	req.Header.Set("Accept", accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, zerr.With(errors.Join(domain.ErrIndexUnavailable, err), "package", name)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := zerr.With(zerr.Wrap(domain.ErrIndexUnavailable, "unexpected response status"), "status_code", resp.StatusCode)
		apiErr = zerr.With(apiErr, "package", name)
		return false, zerr.With(apiErr, "url", target)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, zerr.With(errors.Join(domain.ErrIndexUnavailable, err), "package", name)
	}

	if err := json.Unmarshal(body, out); err != nil {
		parseErr := zerr.Wrap(err, "malformed index response")
		return false, zerr.With(errors.Join(domain.ErrIndexUnavailable, parseErr), "package", name)
	}

	return true, nil
}

// installable reports whether a release has at least one file that is not yanked.
func installable(files []releaseFile) bool {
	for _, f := range files {
		if !f.Yanked {
			return true
		}
	}
	return false
}

// normalizeName returns the canonical project name used in simple index URLs.
func normalizeName(name string) string {
	return strings.ToLower(nameSeparators.ReplaceAllString(name, "-"))
}
