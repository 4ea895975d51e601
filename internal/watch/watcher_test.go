package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestResolveGitDir_Directory(t *testing.T) {
	repo := t.TempDir()
	gitDir := filepath.Join(repo, ".git")
	if err := os.Mkdir(gitDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := resolveGitDir(repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != gitDir {
		t.Fatalf("resolveGitDir = %q, expected %q", got, gitDir)
	}
}

func TestResolveGitDir_WorktreeFile(t *testing.T) {
	repo := t.TempDir()
	real := filepath.Join(t.TempDir(), "worktrees", "wt1")
	if err := os.MkdirAll(real, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(repo, ".git"), "gitdir: "+real+"\n")

	got, err := resolveGitDir(repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != real {
		t.Fatalf("resolveGitDir = %q, expected %q", got, real)
	}
}

func TestResolveGitDir_RelativeWorktreeFile(t *testing.T) {
	repo := t.TempDir()
	writeFile(t, filepath.Join(repo, ".git"), "gitdir: ../shared/.git\n")

	got, err := resolveGitDir(repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(repo, "..", "shared", ".git")
	if got != want {
		t.Fatalf("resolveGitDir = %q, expected %q", got, want)
	}
}

func TestResolveGitDir_Missing(t *testing.T) {
	if _, err := resolveGitDir(t.TempDir()); err == nil {
		t.Fatalf("expected error for directory without .git")
	}
}

func TestResolveGitDir_Malformed(t *testing.T) {
	repo := t.TempDir()
	writeFile(t, filepath.Join(repo, ".git"), "not a gitdir pointer\n")

	if _, err := resolveGitDir(repo); err == nil {
		t.Fatalf("expected error for malformed .git file")
	}
}

func TestHeadWatcher_SignalsOnHeadChange(t *testing.T) {
	repo := t.TempDir()
	gitDir := filepath.Join(repo, ".git")
	if err := os.Mkdir(gitDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	head := filepath.Join(gitDir, "HEAD")
	writeFile(t, head, "ref: refs/heads/main\n")

	w, err := NewHeadWatcher(repo)
	if err != nil {
		t.Fatalf("NewHeadWatcher: %v", err)
	}
	defer w.Close()

	// Rewrite HEAD the way a checkout does.
	writeFile(t, head, "0123456789abcdef0123456789abcdef01234567\n")

	select {
	case <-w.Events():
	case err := <-w.Errors():
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("no signal after HEAD change")
	}
}

func TestHeadWatcher_IgnoresOtherFiles(t *testing.T) {
	repo := t.TempDir()
	gitDir := filepath.Join(repo, ".git")
	if err := os.Mkdir(gitDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(gitDir, "HEAD"), "ref: refs/heads/main\n")

	w, err := NewHeadWatcher(repo)
	if err != nil {
		t.Fatalf("NewHeadWatcher: %v", err)
	}
	defer w.Close()

	writeFile(t, filepath.Join(gitDir, "FETCH_HEAD"), "something\n")
	writeFile(t, filepath.Join(gitDir, "index"), "stuff\n")

	select {
	case <-w.Events():
		t.Fatalf("signal fired for non-HEAD writes")
	case <-time.After(2 * debounceDelay):
	}
}
