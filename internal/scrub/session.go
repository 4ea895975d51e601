// Package scrub holds the position state machine that the original
// slider UI drove: a fetched history plus a selected index, reconciled
// against the working tree on every settled index change.
package scrub

import (
	"context"

	"github.com/masmgr/gitscrub/internal/git"
)

// Session tracks the selected position within a repository's history.
//
// A session is single-threaded by contract: at most one Refresh or SetIndex
// may be in flight at a time, which the caller enforces (the original UI
// did so by disabling input while an operation was pending). There is no
// internal locking.
type Session struct {
	repoPath   string
	reader     git.HistoryReader
	reconciler git.Reconciler

	history git.History
	index   int
}

// NewSession creates a session for the repository at repoPath.
// Call Refresh before navigating.
func NewSession(repoPath string, reader git.HistoryReader, reconciler git.Reconciler) *Session {
	return &Session{repoPath: repoPath, reader: reader, reconciler: reconciler}
}

// Refresh fetches the history wholesale, replacing any previous one, and
// resets the selected index to 0 (the tip). No checkout is issued: the
// initial position corresponds to whatever the working tree already is.
func (s *Session) Refresh(ctx context.Context) error {
	history, err := s.reader.ReadHistory(ctx, s.repoPath)
	if err != nil {
		return err
	}
	s.history = history
	s.index = 0
	return nil
}

// SetIndex moves the selection to target, clamped to the valid range, and
// reconciles the working tree when the clamped index differs from the
// current one. An unchanged index issues no checkout. On reconcile failure
// the previous index is kept, so a later retry repeats the transition.
// It returns the index the session settled on.
func (s *Session) SetIndex(ctx context.Context, target int) (int, error) {
	next := s.history.Clamp(target)
	if next == s.index || s.history.Empty() {
		return s.index, nil
	}
	if err := s.reconciler.Reconcile(ctx, s.repoPath, s.history, next); err != nil {
		return s.index, err
	}
	s.index = next
	return s.index, nil
}

// Index returns the currently selected index.
func (s *Session) Index() int {
	return s.index
}

// History returns the fetched history. The slice must be treated as
// immutable; a Refresh replaces it wholesale.
func (s *Session) History() git.History {
	return s.history
}

// Selected returns the commit at the current index, and false when no
// history has been fetched or the repository has no commits.
func (s *Session) Selected() (git.Commit, bool) {
	return s.history.At(s.index)
}

// RepoPath returns the repository this session scrubs.
func (s *Session) RepoPath() string {
	return s.repoPath
}
