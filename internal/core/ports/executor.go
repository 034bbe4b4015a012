package ports

import (
	"context"
	"io"
)

// Executor runs an external command.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes argv with the given environment in "KEY=VALUE" form.
	// argv[0] is looked up on the PATH of env, not of the current process.
	Run(ctx context.Context, argv, env []string, stdout, stderr io.Writer) error
}
