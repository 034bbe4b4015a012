package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgmod/internal/adapters/shell"
	"go.trai.ch/pkgmod/internal/app"
	"go.trai.ch/pkgmod/internal/core/domain"
	"go.trai.ch/pkgmod/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testComponents struct {
	app    *app.App
	loader *mocks.MockConfigLoader
	logger *mocks.MockLogger
}

func newComponents(t *testing.T) (*testComponents, ComponentProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)

	c := &testComponents{
		loader: mocks.NewMockConfigLoader(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	c.app = app.New(
		c.loader,
		c.logger,
		mocks.NewMockIndexFactory(ctrl),
		mocks.NewMockInstallerFactory(ctrl),
		mocks.NewMockDescriptorRenderer(ctrl),
		mocks.NewMockModulefileWriter(ctrl),
		shell.NewExecutor(c.logger),
	).WithWorkDir(t.TempDir())

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: c.app, Logger: c.logger}, func() {}, nil
	}
	return c, provider
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	_, provider := newComponents(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "pkgmod version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when a command fails.
func TestRun_ExecutionError(t *testing.T) {
	c, provider := newComponents(t)
	c.loader.EXPECT().Load(gomock.Any(), "").Return(domain.Config{}, errors.New("load failed"))
	c.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Contains(t, err.Error(), "load failed")
	})

	exitCode := run(context.Background(), []string{"list"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_ExecPassesExitCode verifies that a failing exec'd command sets the exit code without an error log.
func TestRun_ExecPassesExitCode(t *testing.T) {
	c, provider := newComponents(t)
	c.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "six", "1.16.0", "bin"), 0o755))
	cfg := domain.DefaultConfig()
	cfg.Root = root
	c.loader.EXPECT().Load(gomock.Any(), "").Return(cfg, nil)

	exitCode := run(context.Background(),
		[]string{"exec", "six", "1.16.0", "--", "sh", "-c", "exit 7"},
		new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 7, exitCode)
}
