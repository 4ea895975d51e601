package git

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/masmgr/gitscrub/internal/execx"
)

func coordinatorHistory() History {
	when := time.Date(2024, 12, 3, 14, 5, 22, 0, time.UTC)
	return History{
		{Hash: "abc", Author: "Alice", When: when, Subject: "tip"},
		{Hash: "def", Author: "Bob", When: when.Add(-time.Hour), Subject: "older"},
	}
}

func TestCoordinator_IndexZeroChecksOutBranch(t *testing.T) {
	// Index 0 means "HEAD follows the default branch": the branch name is
	// checked out, never history[0].Hash, which would detach HEAD.
	m := execx.NewMockRunner(execx.MockResult{})
	c := NewCoordinator(m, CheckoutOptions{DefaultBranch: "main"})

	if err := c.Reconcile(context.Background(), "/repo", coordinatorHistory(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "git --no-pager -C /repo checkout main"
	if got := m.LastCall().CommandLine(); got != want {
		t.Fatalf("command = %q, expected %q", got, want)
	}
}

func TestCoordinator_PositiveIndexChecksOutHash(t *testing.T) {
	m := execx.NewMockRunner(execx.MockResult{})
	c := NewCoordinator(m, CheckoutOptions{DefaultBranch: "main"})

	if err := c.Reconcile(context.Background(), "/repo", coordinatorHistory(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "git --no-pager -C /repo checkout def"
	if got := m.LastCall().CommandLine(); got != want {
		t.Fatalf("command = %q, expected %q", got, want)
	}
}

func TestCoordinator_ClampsOutOfRangeIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
		ref   string
	}{
		{name: "NegativeClampsToBranch", index: -5, ref: "main"},
		{name: "PastEndClampsToOldest", index: 12, ref: "def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := execx.NewMockRunner(execx.MockResult{})
			c := NewCoordinator(m, CheckoutOptions{DefaultBranch: "main"})

			if err := c.Reconcile(context.Background(), "/repo", coordinatorHistory(), tt.index); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := "git --no-pager -C /repo checkout " + tt.ref
			if got := m.LastCall().CommandLine(); got != want {
				t.Fatalf("command = %q, expected %q", got, want)
			}
		})
	}
}

func TestCoordinator_EmptyHistoryIsNoop(t *testing.T) {
	m := execx.NewMockRunner(execx.MockResult{})
	c := NewCoordinator(m, CheckoutOptions{DefaultBranch: "main"})

	if err := c.Reconcile(context.Background(), "/repo", History{}, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Calls) != 0 {
		t.Fatalf("runner invoked %d times on empty history, expected 0", len(m.Calls))
	}
}

func TestCoordinator_DefaultBranchFallback(t *testing.T) {
	m := execx.NewMockRunner(execx.MockResult{})
	c := NewCoordinator(m, CheckoutOptions{})

	if err := c.Reconcile(context.Background(), "/repo", coordinatorHistory(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.LastCall().CommandLine(); got != "git --no-pager -C /repo checkout main" {
		t.Fatalf("command = %q, expected default branch main", got)
	}
}

func TestCoordinator_CheckoutRefused(t *testing.T) {
	m := execx.NewMockRunner(execx.MockResult{
		Stderr: []byte("error: Your local changes would be overwritten"),
		Err:    &exec.ExitError{},
	})
	c := NewCoordinator(m, CheckoutOptions{DefaultBranch: "main"})

	err := c.Reconcile(context.Background(), "/repo", coordinatorHistory(), 1)

	var checkoutErr *CheckoutError
	if !errors.As(err, &checkoutErr) {
		t.Fatalf("error = %v (%T), expected *CheckoutError", err, err)
	}
	if checkoutErr.Ref != "def" {
		t.Fatalf("Ref = %q, expected def", checkoutErr.Ref)
	}
	if checkoutErr.Output == "" {
		t.Fatalf("expected captured tool message in error")
	}
}

func TestCoordinator_ToolMissing(t *testing.T) {
	m := execx.NewMockRunner(execx.MockResult{Err: exec.ErrNotFound})
	c := NewCoordinator(m, CheckoutOptions{DefaultBranch: "main"})

	err := c.Reconcile(context.Background(), "/repo", coordinatorHistory(), 1)

	var execErr *ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("error = %v (%T), expected *ExecutionError", err, err)
	}
}
