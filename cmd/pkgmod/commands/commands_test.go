package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgmod/cmd/pkgmod/commands"
	"go.trai.ch/pkgmod/internal/app"
	"go.trai.ch/pkgmod/internal/build"
)

type mockApp struct {
	verbose, jsonLogs bool

	resolveFunc  func(name string, opts app.ResolveOptions) error
	installFunc  func(specs []string, opts app.InstallOptions) error
	describeFunc func(name, version string, opts app.DescribeOptions) error
	listFunc     func(opts app.Options) error
	execFunc     func(name, version string, argv []string, opts app.Options) error
}

func (m *mockApp) ConfigureLogging(verbose, jsonLogs bool) {
	m.verbose = verbose
	m.jsonLogs = jsonLogs
}

func (m *mockApp) Resolve(_ context.Context, _ io.Writer, name string, opts app.ResolveOptions) error {
	if m.resolveFunc != nil {
		return m.resolveFunc(name, opts)
	}
	return nil
}

func (m *mockApp) Install(_ context.Context, _ io.Writer, specs []string, opts app.InstallOptions) error {
	if m.installFunc != nil {
		return m.installFunc(specs, opts)
	}
	return nil
}

func (m *mockApp) Describe(_ context.Context, _ io.Writer, name, version string, opts app.DescribeOptions) error {
	if m.describeFunc != nil {
		return m.describeFunc(name, version, opts)
	}
	return nil
}

func (m *mockApp) List(_ context.Context, _ io.Writer, opts app.Options) error {
	if m.listFunc != nil {
		return m.listFunc(opts)
	}
	return nil
}

func (m *mockApp) Exec(_ context.Context, _, _ io.Writer, name, version string, argv []string, opts app.Options) error {
	if m.execFunc != nil {
		return m.execFunc(name, version, argv, opts)
	}
	return nil
}

func execute(t *testing.T, mock *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Install(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.InstallOptions
		var capturedSpecs []string

		mock := &mockApp{
			installFunc: func(specs []string, opts app.InstallOptions) error {
				capturedSpecs = specs
				captured = opts
				return nil
			},
		}

		_, err := execute(t, mock, "install", "netCDF4", "six==1.16.0",
			"--format", "tcl", "--modulefiles", "/opt/modulefiles", "-j", "4", "--refresh",
			"--root", "/opt/python", "-c", "site.yaml", "-v")
		require.NoError(t, err)

		assert.Equal(t, []string{"netCDF4", "six==1.16.0"}, capturedSpecs)
		assert.Equal(t, app.InstallOptions{
			Options:     app.Options{ConfigPath: "site.yaml", Root: "/opt/python"},
			Format:      "tcl",
			Modulefiles: "/opt/modulefiles",
			Jobs:        4,
			Refresh:     true,
		}, captured)
		assert.True(t, mock.verbose)
		assert.False(t, mock.jsonLogs)
	})

	t.Run("defaults", func(t *testing.T) {
		var captured app.InstallOptions
		mock := &mockApp{
			installFunc: func(_ []string, opts app.InstallOptions) error {
				captured = opts
				return nil
			},
		}

		_, err := execute(t, mock, "install", "six")
		require.NoError(t, err)
		assert.Equal(t, "sh", captured.Format)
		assert.Equal(t, 1, captured.Jobs)
	})

	t.Run("returns error on install failure", func(t *testing.T) {
		mock := &mockApp{
			installFunc: func(_ []string, _ app.InstallOptions) error {
				return errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "install", "six")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no packages provided", func(t *testing.T) {
		mock := &mockApp{
			installFunc: func(_ []string, _ app.InstallOptions) error {
				panic("should not be called")
			},
		}

		out, err := execute(t, mock, "install")
		require.NoError(t, err)
		assert.Contains(t, out, "Usage:")
	})
}

func TestCommands_Resolve(t *testing.T) {
	var captured string
	var refresh bool
	mock := &mockApp{
		resolveFunc: func(name string, opts app.ResolveOptions) error {
			captured = name
			refresh = opts.Refresh
			return nil
		},
	}

	_, err := execute(t, mock, "resolve", "requests", "--refresh", "--json-logs")
	require.NoError(t, err)
	assert.Equal(t, "requests", captured)
	assert.True(t, refresh)
	assert.True(t, mock.jsonLogs)

	_, err = execute(t, &mockApp{}, "resolve")
	require.Error(t, err)
}

func TestCommands_Describe(t *testing.T) {
	var got []string
	var format string
	mock := &mockApp{
		describeFunc: func(name, version string, opts app.DescribeOptions) error {
			got = []string{name, version}
			format = opts.Format
			return nil
		},
	}

	_, err := execute(t, mock, "describe", "six", "1.16.0", "-f", "json")
	require.NoError(t, err)
	assert.Equal(t, []string{"six", "1.16.0"}, got)
	assert.Equal(t, "json", format)
}

func TestCommands_List(t *testing.T) {
	var captured app.Options
	mock := &mockApp{
		listFunc: func(opts app.Options) error {
			captured = opts
			return nil
		},
	}

	_, err := execute(t, mock, "list", "--root", "/opt/python")
	require.NoError(t, err)
	assert.Equal(t, "/opt/python", captured.Root)

	_, err = execute(t, mock, "list", "extra")
	require.Error(t, err)
}

func TestCommands_Exec(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "with separator",
			args: []string{"exec", "six", "1.16.0", "--", "python3", "-c", "import six"},
			want: []string{"python3", "-c", "import six"},
		},
		{
			name: "without separator",
			args: []string{"exec", "six", "1.16.0", "tool", "--help"},
			want: []string{"tool", "--help"},
		},
		{
			name: "separator only",
			args: []string{"exec", "six", "1.16.0", "--"},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured []string
			mock := &mockApp{
				execFunc: func(name, version string, argv []string, _ app.Options) error {
					assert.Equal(t, "six", name)
					assert.Equal(t, "1.16.0", version)
					captured = argv
					return nil
				},
			}

			_, err := execute(t, mock, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, captured)
		})
	}
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pkgmod version "+build.Version)

	out, err = execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Commit)
}
