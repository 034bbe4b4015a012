// Package shell provides the shell executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/pkgmod/internal/core/domain"
	"go.trai.ch/pkgmod/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run executes argv with exactly env as its environment.
// The executable is resolved against the PATH found in env so that
// directories prepended by an environment descriptor take effect.
func (e *Executor) Run(ctx context.Context, argv, env []string, stdout, stderr io.Writer) error {
	if len(argv) == 0 {
		return domain.ErrNoCommand
	}

	name := argv[0]
	executable := name
	if !strings.ContainsRune(name, filepath.Separator) {
		lp, err := lookPath(name, env)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "command not found"), "command", name)
		}
		executable = lp
	}
	e.logger.Debug("exec " + executable)

	cmd := exec.CommandContext(ctx, executable, argv[1:]...) //nolint:gosec // user provided command

	// exec.CommandContext sets Args[0] to the resolved path; keep the name as invoked.
	cmd.Args[0] = name
	// A nil Env would inherit the process environment.
	cmd.Env = append(make([]string, 0, len(env)), env...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(errors.Join(domain.ErrCommandFailed, err), "exit_code", exitCode), "command", name)
	}

	return nil
}

// ExitCode returns the exit status carried by an error from Run, or 1 when
// the command did not get to exit on its own.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
