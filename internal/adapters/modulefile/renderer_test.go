package modulefile_test

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgmod/internal/adapters/modulefile"
	"go.trai.ch/pkgmod/internal/core/domain"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

func netCDF4() (domain.InstallationRecord, domain.EnvironmentDescriptor) {
	record := domain.NewInstallationRecord("/opt/pkgs", "netCDF4", "1.0.4")

	var descriptor domain.EnvironmentDescriptor
	descriptor.Add(domain.VarPath, filepath.Join(record.Root, "bin"))
	descriptor.Add(domain.VarPythonPath, filepath.Join(record.Root, "lib", "python3.12", "site-packages"))
	descriptor.Add(domain.VarLibraryPath, filepath.Join(record.Root, "lib"))
	descriptor.Add(domain.VarLibraryPath, filepath.Join(record.Root, "lib64"))
	return record, descriptor
}

func TestRenderer_Golden(t *testing.T) {
	record, descriptor := netCDF4()
	empty := domain.NewInstallationRecord("/opt/pkgs", "empty", "0.1")

	for _, format := range modulefile.Formats() {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, modulefile.NewRenderer().Render(&buf, format, record, descriptor))
			goldie.New(t).Assert(t, "netcdf4."+format, buf.Bytes())

			buf.Reset()
			require.NoError(t, modulefile.NewRenderer().Render(&buf, format, empty, domain.EnvironmentDescriptor{}))
			goldie.New(t).Assert(t, "empty."+format, buf.Bytes())
		})
	}
}

func TestRenderer_UnknownFormat(t *testing.T) {
	record, descriptor := netCDF4()

	var buf bytes.Buffer
	err := modulefile.NewRenderer().Render(&buf, "fish", record, descriptor)
	require.ErrorIs(t, err, domain.ErrUnknownFormat)
	assert.Zero(t, buf.Len())
}

func TestRenderer_ShEvaluatesInOrder(t *testing.T) {
	record, descriptor := netCDF4()

	var script bytes.Buffer
	require.NoError(t, modulefile.NewRenderer().Render(&script, modulefile.FormatSh, record, descriptor))

	file, err := syntax.NewParser().Parse(&script, "netcdf4.sh")
	require.NoError(t, err)

	runner, err := interp.New(
		interp.Env(expand.ListEnviron("LD_LIBRARY_PATH=/usr/local/lib")),
		interp.StdIO(nil, io.Discard, io.Discard),
	)
	require.NoError(t, err)
	require.NoError(t, runner.Run(context.Background(), file))

	assert.Equal(t,
		"/opt/pkgs/netCDF4/1.0.4/lib:/opt/pkgs/netCDF4/1.0.4/lib64:/usr/local/lib",
		runner.Vars["LD_LIBRARY_PATH"].String())
	assert.Equal(t,
		"/opt/pkgs/netCDF4/1.0.4/lib/python3.12/site-packages",
		runner.Vars["PYTHONPATH"].String(), "unset variables get no trailing separator")
}

func TestRenderer_QuotesSpecialPaths(t *testing.T) {
	record := domain.NewInstallationRecord("/opt/my pkgs", "odd", "1.0")
	var descriptor domain.EnvironmentDescriptor
	descriptor.Add(domain.VarPath, "/opt/my pkgs/odd/1.0/$bin")

	var sh bytes.Buffer
	require.NoError(t, modulefile.NewRenderer().Render(&sh, modulefile.FormatSh, record, descriptor))
	assert.Contains(t, sh.String(), `export PATH="/opt/my pkgs/odd/1.0/\$bin${PATH:+:$PATH}"`)

	var tcl bytes.Buffer
	require.NoError(t, modulefile.NewRenderer().Render(&tcl, modulefile.FormatTcl, record, descriptor))
	assert.Contains(t, tcl.String(), `prepend-path PATH "/opt/my pkgs/odd/1.0/\$bin"`)
}
