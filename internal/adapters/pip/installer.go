// Package pip implements the Installer port by running an external installer command.
package pip

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/pkgmod/internal/core/domain"
	"go.trai.ch/pkgmod/internal/core/ports"
	"go.trai.ch/zerr"
)

// Placeholders substituted in every argument of the command template.
const (
	PlaceholderName    = "{name}"
	PlaceholderVersion = "{version}"
	PlaceholderTarget  = "{target}"
)

const (
	// maxDiagnostics bounds how much installer output is kept for error reports.
	maxDiagnostics = 64 << 10

	// waitDelay bounds how long output is drained after a canceled installer was killed.
	waitDelay = 2 * time.Second
)

// Installer implements ports.Installer.
type Installer struct {
	command []string
	logger  ports.Logger
}

// NewInstaller creates an Installer running the given argv template.
func NewInstaller(command []string, logger ports.Logger) *Installer {
	return &Installer{command: command, logger: logger}
}

// Install runs the command template for one package version with targetDir as its prefix.
// Combined stdout and stderr are returned as diagnostics, truncated to the most recent output.
func (i *Installer) Install(ctx context.Context, name, version, targetDir string) ([]byte, error) {
	argv := expand(i.command, name, version, targetDir)

	diagnostics := &tailBuffer{max: maxDiagnostics}
	output := &logWriter{logger: i.logger}
	w := io.MultiWriter(diagnostics, output)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // installer command comes from configuration
	cmd.Stdout = w
	cmd.Stderr = w
	cmd.Env = append(os.Environ(), "PIP_NO_INPUT=1")
	cmd.WaitDelay = waitDelay

	i.logger.Debug("running " + strings.Join(argv, " "))

	err := cmd.Run()
	_ = output.Close()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			failure := zerr.With(zerr.Wrap(err, "installer exited unsuccessfully"), "exit_code", exitErr.ExitCode())
			return diagnostics.Bytes(), zerr.With(failure, "command", argv[0])
		}
		return diagnostics.Bytes(), zerr.With(zerr.Wrap(err, "failed to run installer"), "command", argv[0])
	}

	return diagnostics.Bytes(), nil
}

// expand substitutes the placeholders in a copy of command.
func expand(command []string, name, version, target string) []string {
	r := strings.NewReplacer(
		PlaceholderName, name,
		PlaceholderVersion, version,
		PlaceholderTarget, target,
	)

	argv := make([]string, len(command))
	for idx, arg := range command {
		argv[idx] = r.Replace(arg)
	}
	return argv
}

// validateCommand checks that a template can run and installs into the staging directory.
func validateCommand(command []string) error {
	if len(command) == 0 || command[0] == "" {
		return zerr.Wrap(domain.ErrInvalidConfig, "installer command is empty")
	}
	for _, arg := range command {
		if strings.Contains(arg, PlaceholderTarget) {
			return nil
		}
	}
	return zerr.With(
		zerr.Wrap(domain.ErrInvalidConfig, "installer command must reference "+PlaceholderTarget),
		"command", strings.Join(command, " "),
	)
}

// tailBuffer keeps the last max bytes written to it.
type tailBuffer struct {
	max int
	buf []byte
}

func (b *tailBuffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	if over := len(b.buf) - b.max; over > 0 {
		b.buf = append(b.buf[:0], b.buf[over:]...)
	}
	return len(p), nil
}

func (b *tailBuffer) Bytes() []byte {
	return b.buf
}

// logWriter forwards complete output lines to the debug log.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	w.logger.Debug(strings.TrimSuffix(string(line), "\r"))
}
