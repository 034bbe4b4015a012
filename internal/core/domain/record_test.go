package domain_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgmod/internal/core/domain"
)

func TestNewInstallationRecord(t *testing.T) {
	rec := domain.NewInstallationRecord("/opt/pkgs", "netCDF4", "1.0.4")

	assert.Equal(t, "netCDF4", rec.Name)
	assert.Equal(t, "1.0.4", rec.Version)
	assert.Equal(t, filepath.Join("/opt/pkgs", "netCDF4", "1.0.4"), rec.Root)
	assert.Equal(t, rec, domain.NewInstallationRecord("/opt/pkgs", "netCDF4", "1.0.4"))
}

func TestValidateVersion(t *testing.T) {
	valid := []string{"1.0.4", "2.0.0b2", "1.2.3+local.7", "v1", "1.."}
	for _, v := range valid {
		assert.NoError(t, domain.ValidateVersion(v), v)
	}

	invalid := []string{
		"", ".", "..", "..1", ".1.0.lock", "../../etc", "1.0/../../x", `1.0\evil`, "1.0\x00",
		"1.0\ntouch /tmp/pwned", "1.0\r", "1.0\t1", "1.0\x1b[31m", "1.0\x7f",
	}
	for _, v := range invalid {
		err := domain.ValidateVersion(v)
		require.Error(t, err, v)
		assert.True(t, errors.Is(err, domain.ErrInvalidVersion), v)
	}
}

func TestValidatePackageName(t *testing.T) {
	assert.NoError(t, domain.ValidatePackageName("netCDF4"))
	assert.NoError(t, domain.ValidatePackageName("python-dateutil"))

	for _, name := range []string{"", ".", "..", "a/b", `a\b`, "six\nrm -rf ~", "six\x7f"} {
		err := domain.ValidatePackageName(name)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, domain.ErrInvalidPackageName), name)
		assert.False(t, errors.Is(err, domain.ErrInvalidVersion), name)
	}
}

func TestInstallState_String(t *testing.T) {
	assert.Equal(t, "installed", domain.StateInstalled.String())
	assert.Equal(t, "already installed", domain.StateAlreadyInstalled.String())
	assert.Equal(t, "failed", domain.StateFailed.String())
}
