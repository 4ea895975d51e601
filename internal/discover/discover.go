// Package discover finds git repositories under a directory tree. It is the
// non-interactive stand-in for the original application's repository picker.
package discover

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Options controls a discovery walk.
type Options struct {
	Include  []string // Glob patterns repositories must match; empty means all
	Exclude  []string // Glob patterns to skip; exclude wins over include
	MaxDepth int      // Directory depth below the root; 0 means unlimited
}

// Find walks root and returns the paths of directories that contain a
// gitdir, relative paths normalized to slashes for matching. Discovered
// repositories are not descended into: nested repos under a working tree
// belong to that tree.
func Find(root string, opts Options) ([]string, error) {
	root = filepath.Clean(root)

	var repos []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			if path == root {
				return err
			}
			return fs.SkipDir
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" {
			return fs.SkipDir
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if opts.MaxDepth > 0 && rel != "." && strings.Count(rel, "/")+1 > opts.MaxDepth {
			return fs.SkipDir
		}

		if !isRepo(path) {
			return nil
		}
		if matchesFilters(rel, opts) {
			repos = append(repos, path)
		}
		return fs.SkipDir
	})
	if err != nil {
		return nil, err
	}

	return repos, nil
}

// isRepo reports whether dir contains a gitdir: either a .git directory or
// the .git pointer file a linked worktree carries.
func isRepo(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && (info.IsDir() || info.Mode().IsRegular())
}

// matchesFilters checks a slash-normalized relative path against the
// include/exclude globs. Exclude patterns are checked first.
func matchesFilters(rel string, opts Options) bool {
	for _, pattern := range opts.Exclude {
		matched, _ := doublestar.Match(pattern, rel)
		if matched {
			return false
		}
	}

	if len(opts.Include) == 0 {
		return true
	}

	for _, pattern := range opts.Include {
		matched, _ := doublestar.Match(pattern, rel)
		if matched {
			return true
		}
	}

	return false
}
