package git

import (
	"context"
	"time"

	"github.com/masmgr/gitscrub/internal/execx"
)

// CheckoutOptions configures the checkout coordinator.
type CheckoutOptions struct {
	DefaultBranch string        // ref checked out for index 0; empty means "main"
	Timeout       time.Duration // per-invocation; 0 means none
	GitPath       string        // git binary; empty means "git"
}

func (o CheckoutOptions) defaultBranch() string {
	if o.DefaultBranch == "" {
		return "main"
	}
	return o.DefaultBranch
}

func (o CheckoutOptions) gitPath() string {
	if o.GitPath == "" {
		return "git"
	}
	return o.GitPath
}

// Coordinator reconciles a repository's working tree with a position in a
// fetched history. It is stateless and idempotent: callers are expected to
// invoke it once per settled index change, but repeated calls with the same
// index issue the same checkout again rather than being filtered here.
type Coordinator struct {
	runner execx.Runner
	opts   CheckoutOptions
}

// NewCoordinator creates a coordinator backed by the given runner.
// A nil runner means real process execution.
func NewCoordinator(runner execx.Runner, opts CheckoutOptions) *Coordinator {
	if runner == nil {
		runner = execx.ExecRunner{}
	}
	return &Coordinator{runner: runner, opts: opts}
}

// Reconcile checks out the ref corresponding to targetIndex.
//
// Index 0 always checks out the configured default branch by name, never
// history[0].Hash: checking out the tip hash would detach HEAD. Any other
// index checks out that commit's hash verbatim (detached HEAD). Out-of-range
// indices are clamped. An empty history is a no-op: there is no valid ref
// to check out.
//
// This mutates the target repository's HEAD and working tree.
func (c *Coordinator) Reconcile(ctx context.Context, repoPath string, history History, targetIndex int) error {
	if history.Empty() {
		return nil
	}

	idx := history.Clamp(targetIndex)
	ref := c.opts.defaultBranch()
	if idx > 0 {
		ref = history[idx].Hash
	}

	return c.checkout(ctx, repoPath, ref)
}

func (c *Coordinator) checkout(ctx context.Context, repoPath, ref string) error {
	ctx, cancel := withTimeout(ctx, c.opts.Timeout)
	defer cancel()

	stdout, stderr, err := c.runner.Run(ctx, "", c.opts.gitPath(),
		"--no-pager", "-C", repoPath, "checkout", ref)
	if err != nil {
		if execx.IsStartFailure(err) {
			return &ExecutionError{Op: "checkout", Err: err, Output: toolDetail(stdout, stderr)}
		}
		return &CheckoutError{Ref: ref, Err: err, Output: toolDetail(stdout, stderr)}
	}
	return nil
}
