package pip_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgmod/internal/adapters/pip"
	"go.trai.ch/pkgmod/internal/core/domain"
	"go.trai.ch/pkgmod/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newInstaller(t *testing.T, script string) *pip.Installer {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return pip.NewInstaller([]string{"sh", "-c", script, "sh", "{name}", "{version}", "{target}"}, log)
}

func TestExpand(t *testing.T) {
	argv := pip.Expand(
		[]string{"pip", "install", "--prefix", "{target}", "{name}=={version}"},
		"requests", "2.32.3", "/opt/pkgs/requests/.2.32.3.staging-1",
	)
	assert.Equal(t, []string{
		"pip", "install", "--prefix", "/opt/pkgs/requests/.2.32.3.staging-1", "requests==2.32.3",
	}, argv)
}

func TestInstall_Success(t *testing.T) {
	target := t.TempDir()
	installer := newInstaller(t, `mkdir -p "$3/bin" && touch "$3/bin/$1" && echo "Successfully installed $1-$2"`)

	diagnostics, err := installer.Install(context.Background(), "tool", "1.0", target)
	require.NoError(t, err)
	assert.Equal(t, "Successfully installed tool-1.0\n", string(diagnostics))
	assert.FileExists(t, filepath.Join(target, "bin", "tool"))
}

func TestInstall_FailureCarriesOutput(t *testing.T) {
	installer := newInstaller(t, `echo "collecting $1"; echo "ERROR: no version $2" >&2; exit 3`)

	diagnostics, err := installer.Install(context.Background(), "tool", "9.9", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, string(diagnostics), "collecting tool")
	assert.Contains(t, string(diagnostics), "ERROR: no version 9.9")

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])
	assert.Equal(t, "sh", zErr.Metadata()["command"])
}

func TestInstall_DiagnosticsKeepTail(t *testing.T) {
	installer := newInstaller(t, `i=0; while [ $i -lt 20000 ]; do echo "line $i"; i=$((i+1)); done; echo "final words"`)

	diagnostics, err := installer.Install(context.Background(), "tool", "1.0", t.TempDir())
	require.NoError(t, err)
	assert.Len(t, diagnostics, pip.MaxDiagnostics)
	assert.True(t, strings.HasSuffix(string(diagnostics), "final words\n"))
}

func TestInstall_MissingExecutable(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	installer := pip.NewInstaller([]string{"pkgmod-no-such-installer", "{target}"}, log)
	_, err := installer.Install(context.Background(), "tool", "1.0", t.TempDir())
	require.ErrorContains(t, err, "failed to run installer")
}

func TestInstall_ContextCanceled(t *testing.T) {
	installer := newInstaller(t, `exec sleep 10`)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := installer.Install(ctx, "tool", "1.0", t.TempDir())
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestInstall_LogsOutputLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug("first").Times(1)
	log.EXPECT().Debug("partial").Times(1)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	installer := pip.NewInstaller([]string{"sh", "-c", `echo first; printf partial`, "{target}"}, log)
	_, err := installer.Install(context.Background(), "tool", "1.0", t.TempDir())
	require.NoError(t, err)
}

func TestFactory_NewInstaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := pip.NewFactory(mocks.NewMockLogger(ctrl))

	installer, err := factory.NewInstaller(domain.DefaultInstallerCommand())
	require.NoError(t, err)
	assert.NotNil(t, installer)

	_, err = factory.NewInstaller(nil)
	require.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = factory.NewInstaller([]string{"pip", "install", "{name}"})
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestInstall_WritesOnlyBelowTarget(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "stage")
	require.NoError(t, os.Mkdir(target, 0o755))

	installer := newInstaller(t, `touch "$3/marker"`)
	_, err := installer.Install(context.Background(), "tool", "1.0", target)
	require.NoError(t, err)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.FileExists(t, filepath.Join(target, "marker"))
}
