package exec

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rileyhilliard/rmon/internal/errors"
)

// DefaultTimeout bounds a single external command when the caller's context
// carries no deadline of its own.
const DefaultTimeout = 2 * time.Second

// Runner runs an external command and returns its stdout.
// A non-zero exit, a missing binary, or an expired context is an error.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// LocalRunner executes commands on the local machine.
type LocalRunner struct {
	Timeout time.Duration
}

// NewLocalRunner creates a runner that kills commands after timeout.
// A zero timeout uses DefaultTimeout.
func NewLocalRunner(timeout time.Duration) *LocalRunner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &LocalRunner{Timeout: timeout}
}

// Output runs name with args and captures stdout.
func (r *LocalRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, name, args...)
	command.Stdout = &stdout
	command.Stderr = &stderr
	// Don't let a child holding the pipes open outlive the deadline.
	command.WaitDelay = 100 * time.Millisecond

	runErr := command.Run()
	if ctx.Err() != nil {
		return nil, errors.WrapWithCode(ctx.Err(), errors.ErrExec,
			fmt.Sprintf("%s timed out", name),
			"")
	}
	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = fmt.Sprintf("exit status %d", exitErr.ExitCode())
			}
			return nil, errors.WrapWithCode(fmt.Errorf("%s", msg), errors.ErrExec,
				fmt.Sprintf("%s exited with code %d", name, exitErr.ExitCode()),
				"")
		}
		return nil, errors.WrapWithCode(runErr, errors.ErrExec,
			fmt.Sprintf("Couldn't run %s", name),
			"Make sure the command is installed and on PATH.")
	}

	return stdout.Bytes(), nil
}
