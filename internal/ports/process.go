package ports

import "context"

// ProcessRunnerPort executes an external command in a working directory
// and returns its captured standard output. Implementations may return
// partial output together with a non-nil error when the command exited
// nonzero but still produced output.
type ProcessRunnerPort interface {
	Run(ctx context.Context, dir string, name string, args ...string) ([]byte, error)
}
