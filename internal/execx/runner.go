package execx

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Runner abstracts launching an external process and capturing its output.
// The core git operations depend on this interface so they can be tested
// with canned output instead of an installed git binary.
type Runner interface {
	// Run executes name with args, with the working directory overridden to
	// dir (the calling process never changes its own working directory).
	// It returns captured stdout and stderr; err is non-nil when the process
	// could not be started or exited nonzero.
	Run(ctx context.Context, dir string, name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner runs commands via os/exec.
type ExecRunner struct{}

// Compile-time interface conformance check.
var _ Runner = ExecRunner{}

func (ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// IsStartFailure reports whether err came from failing to launch the process
// at all (binary missing, not executable, context already expired) rather
// than from the process running and exiting nonzero.
func IsStartFailure(err error) bool {
	if err == nil {
		return false
	}
	var exitErr *exec.ExitError
	return !errors.As(err, &exitErr)
}
