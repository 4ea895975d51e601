// Package watch notifies callers when a repository's HEAD moves, replacing
// the polling a UI would otherwise need to keep its position display honest
// after an external checkout.
package watch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay is the quiet period after the last HEAD write before a
// notification fires. Git rewrites HEAD via create+rename, which produces
// several events per checkout; coalescing them avoids duplicate refetches.
const debounceDelay = 250 * time.Millisecond

// HeadWatcher watches a repository's gitdir and emits a signal whenever
// HEAD changes. Close releases the underlying watcher; no further signals
// are delivered after it returns.
type HeadWatcher struct {
	fw     *fsnotify.Watcher
	events chan struct{}
	errs   chan error
	done   chan struct{}

	// Guards the debounce timer so Close can cancel it safely.
	mu       sync.Mutex
	debounce *time.Timer
	closed   bool
}

// NewHeadWatcher starts watching the repository at repoPath.
func NewHeadWatcher(repoPath string) (*HeadWatcher, error) {
	gitDir, err := resolveGitDir(repoPath)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not HEAD itself: the rename dance would drop a
	// watch placed directly on the file.
	if err := fw.Add(gitDir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", gitDir, err)
	}

	w := &HeadWatcher{
		fw:     fw,
		events: make(chan struct{}, 1),
		errs:   make(chan error, 1),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Events delivers one signal per settled HEAD change.
func (w *HeadWatcher) Events() <-chan struct{} {
	return w.events
}

// Errors delivers watcher failures.
func (w *HeadWatcher) Errors() <-chan error {
	return w.errs
}

// Close stops watching. Safe to call once.
func (w *HeadWatcher) Close() error {
	close(w.done)
	w.mu.Lock()
	w.closed = true
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.mu.Unlock()
	return w.fw.Close()
}

func (w *HeadWatcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != "HEAD" {
				continue
			}
			w.scheduleSignal()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

// scheduleSignal (re)arms the debounce timer; the signal send is
// non-blocking since a pending signal already covers the change.
func (w *HeadWatcher) scheduleSignal() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, func() {
		w.mu.Lock()
		closed := w.closed
		w.mu.Unlock()
		if closed {
			return
		}
		select {
		case w.events <- struct{}{}:
		default:
		}
	})
}

// resolveGitDir locates the gitdir for a repository path, following the
// ".git file" indirection used by linked worktrees and submodules.
func resolveGitDir(repoPath string) (string, error) {
	dotGit := filepath.Join(repoPath, ".git")
	info, err := os.Stat(dotGit)
	if err != nil {
		return "", fmt.Errorf("resolve gitdir: %w", err)
	}
	if info.IsDir() {
		return dotGit, nil
	}

	data, err := os.ReadFile(dotGit)
	if err != nil {
		return "", fmt.Errorf("resolve gitdir: %w", err)
	}
	line := strings.TrimSpace(string(data))
	target, ok := strings.CutPrefix(line, "gitdir:")
	if !ok {
		return "", errors.New("resolve gitdir: unrecognized .git file format")
	}
	target = strings.TrimSpace(target)
	if !filepath.IsAbs(target) {
		target = filepath.Join(repoPath, target)
	}
	return target, nil
}
