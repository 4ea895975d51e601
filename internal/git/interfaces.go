package git

import "context"

// HistoryReader defines the interface for reading a repository's commit
// history. This abstraction allows for easier testing and alternative
// implementations (the default shells out to git; a go-git backed reader
// exists for environments without the binary).
type HistoryReader interface {
	// ReadHistory returns the commit history of the repository at repoPath,
	// newest-first.
	ReadHistory(ctx context.Context, repoPath string) (History, error)
}

// Reconciler brings a repository's working tree in line with a position in
// a fetched history.
type Reconciler interface {
	// Reconcile checks out the ref corresponding to targetIndex: the
	// configured default branch for index 0, the commit hash otherwise.
	Reconcile(ctx context.Context, repoPath string, history History, targetIndex int) error
}

// Compile-time interface conformance checks.
var (
	_ HistoryReader = (*CLIReader)(nil)
	_ HistoryReader = (*GoGitReader)(nil)
	_ HistoryReader = (*MockHistoryReader)(nil)

	_ Reconciler = (*Coordinator)(nil)
	_ Reconciler = (*MockReconciler)(nil)
)
