package adapters

import (
	"context"
	"errors"
	"os/exec"

	"license-audit/internal/ports"
	"license-audit/internal/shared"
)

// ExecRunnerAdapter runs package manager commands with os/exec. Standard
// output is returned even when the command exits nonzero, because npm
// and friends report peer dependency problems through the exit code
// while still printing a usable tree.
type ExecRunnerAdapter struct{}

func NewExecRunnerAdapter() ExecRunnerAdapter {
	return ExecRunnerAdapter{}
}

func (a ExecRunnerAdapter) Run(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return output, shared.CommandError(exitErr.Stderr, err)
		}
		return output, err
	}
	return output, nil
}

var _ ports.ProcessRunnerPort = ExecRunnerAdapter{}
