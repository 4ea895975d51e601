package git

import (
	"context"
	"errors"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// GoGitReader reads commit history through go-git, without shelling out.
// It honors the same contract as CLIReader and exists for environments
// where no git binary is installed.
type GoGitReader struct {
	opts ReadOptions
}

// NewGoGitReader creates a pure-Go history reader.
func NewGoGitReader(opts ReadOptions) *GoGitReader {
	return &GoGitReader{opts: opts}
}

// ReadHistory walks the repository log starting at HEAD, newest-first.
func (r *GoGitReader) ReadHistory(ctx context.Context, repoPath string) (History, error) {
	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		return nil, &ExecutionError{Op: "log", Err: err}
	}

	ref, err := repo.Head()
	if err != nil {
		// A repository with no commits yet has no HEAD to resolve.
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return History{}, nil
		}
		return nil, &ToolFailure{Op: "log", Err: err}
	}

	iter, err := repo.Log(&gogit.LogOptions{From: ref.Hash()})
	if err != nil {
		return nil, &ToolFailure{Op: "log", Err: err}
	}
	defer iter.Close()

	var history History

	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.opts.Limit > 0 && len(history) >= r.opts.Limit {
			return storer.ErrStop
		}

		// Subject only, matching git's %s.
		subject := c.Message
		if idx := strings.IndexByte(subject, '\n'); idx != -1 {
			subject = subject[:idx]
		}

		history = append(history, Commit{
			Hash:    c.Hash.String(),
			Author:  c.Author.Name,
			When:    c.Author.When,
			Subject: subject,
		})
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, &ExecutionError{Op: "log", Err: err}
		}
		return nil, &ToolFailure{Op: "log", Err: err}
	}

	return history, nil
}
