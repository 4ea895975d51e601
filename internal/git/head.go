package git

import (
	"context"
	"strings"
	"time"

	"github.com/masmgr/gitscrub/internal/execx"
)

// HeadState describes where a repository's HEAD currently points.
type HeadState struct {
	Hash     string
	Branch   string // short branch name; empty when detached
	Detached bool
}

// Inspector reports the current HEAD of a repository.
type Inspector struct {
	runner  execx.Runner
	gitPath string
	timeout time.Duration
}

// NewInspector creates an inspector backed by the given runner.
// A nil runner means real process execution.
func NewInspector(runner execx.Runner, gitPath string, timeout time.Duration) *Inspector {
	if runner == nil {
		runner = execx.ExecRunner{}
	}
	if gitPath == "" {
		gitPath = "git"
	}
	return &Inspector{runner: runner, gitPath: gitPath, timeout: timeout}
}

// Head resolves the repository's current HEAD hash and, when HEAD is
// attached, the branch it follows. symbolic-ref exits nonzero on a
// detached HEAD; that is a state, not an error.
func (i *Inspector) Head(ctx context.Context, repoPath string) (HeadState, error) {
	ctx, cancel := withTimeout(ctx, i.timeout)
	defer cancel()

	stdout, stderr, err := i.runner.Run(ctx, "", i.gitPath,
		"--no-pager", "-C", repoPath, "rev-parse", "HEAD")
	if err != nil {
		if execx.IsStartFailure(err) {
			return HeadState{}, &ExecutionError{Op: "head", Err: err, Output: toolDetail(stdout, stderr)}
		}
		return HeadState{}, &ToolFailure{Op: "head", Err: err, Output: toolDetail(stdout, stderr)}
	}
	state := HeadState{Hash: strings.TrimSpace(string(stdout))}

	stdout, _, err = i.runner.Run(ctx, "", i.gitPath,
		"--no-pager", "-C", repoPath, "symbolic-ref", "-q", "--short", "HEAD")
	if err != nil {
		if execx.IsStartFailure(err) {
			return HeadState{}, &ExecutionError{Op: "head", Err: err}
		}
		state.Detached = true
		return state, nil
	}
	state.Branch = strings.TrimSpace(string(stdout))

	return state, nil
}
