package pypi

import "time"

// simpleContentType selects the JSON form of the simple repository API.
const simpleContentType = "application/vnd.pypi.simple.v1+json"

// projectResponse is the subset of the per-project JSON API we read.
type projectResponse struct {
	Releases map[string][]releaseFile `json:"releases"`
}

// releaseFile is a single distribution file of a release.
type releaseFile struct {
	Filename string `json:"filename"`
	Yanked   bool   `json:"yanked"`
}

// simpleResponse is the subset of a simple API project page we read.
// Versions is only present from api-version 1.1 on.
type simpleResponse struct {
	Meta struct {
		APIVersion string `json:"api-version"`
	} `json:"meta"`
	Name     string   `json:"name"`
	Versions []string `json:"versions"`
}

// cacheEntry is the on-disk form of a cached release list.
type cacheEntry struct {
	Index     string    `json:"index"`
	Name      string    `json:"name"`
	Releases  []string  `json:"releases"`
	Timestamp time.Time `json:"timestamp"`
}
