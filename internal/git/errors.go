package git

import (
	"fmt"
	"strings"
)

// ExecutionError means the git tool could not be run at all: binary missing,
// not executable, or the operation timed out before the process finished.
type ExecutionError struct {
	Op     string // "log", "checkout", "head"
	Err    error
	Output string
}

func (e *ExecutionError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("git %s failed to run: %v: %s", e.Op, e.Err, e.Output)
	}
	return fmt.Sprintf("git %s failed to run: %v", e.Op, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// ToolFailure means git ran but exited nonzero.
type ToolFailure struct {
	Op     string
	Err    error
	Output string
}

func (e *ToolFailure) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("git %s failed: %v: %s", e.Op, e.Err, e.Output)
	}
	return fmt.Sprintf("git %s failed: %v", e.Op, e.Err)
}

func (e *ToolFailure) Unwrap() error { return e.Err }

// CheckoutError means git refused a checkout, e.g. a dirty working tree
// conflicting with the target. The working tree is left as it was.
type CheckoutError struct {
	Ref    string
	Err    error
	Output string
}

func (e *CheckoutError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("git checkout %s failed: %v: %s", e.Ref, e.Err, e.Output)
	}
	return fmt.Sprintf("git checkout %s failed: %v", e.Ref, e.Err)
}

func (e *CheckoutError) Unwrap() error { return e.Err }

// toolDetail picks the most useful captured output for an error message:
// stderr when git wrote there, otherwise stdout.
func toolDetail(stdout, stderr []byte) string {
	if s := strings.TrimSpace(string(stderr)); s != "" {
		return s
	}
	return strings.TrimSpace(string(stdout))
}
