package domain_test

import (
	"path/filepath"
	"testing"

	"go.trai.ch/pkgmod/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "DefaultPkgmodPath",
			got:      domain.DefaultPkgmodPath(),
			expected: ".pkgmod",
		},
		{
			name:     "DefaultInstallRoot",
			got:      domain.DefaultInstallRoot(),
			expected: filepath.Join(".pkgmod", "packages"),
		},
		{
			name:     "DefaultIndexCachePath",
			got:      domain.DefaultIndexCachePath(),
			expected: filepath.Join(".pkgmod", "cache", "index"),
		},
		{
			name:     "InstallPath",
			got:      domain.InstallPath("/opt", "netCDF4", "1.0.4"),
			expected: filepath.Join("/opt", "netCDF4", "1.0.4"),
		},
		{
			name:     "LockPath",
			got:      domain.LockPath("/opt", "netCDF4", "1.0.4"),
			expected: filepath.Join("/opt", "netCDF4", ".1.0.4.lock"),
		},
		{
			name:     "StagingPattern",
			got:      domain.StagingPattern("1.0.4"),
			expected: ".1.0.4.staging-*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}
