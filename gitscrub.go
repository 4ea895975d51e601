package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/masmgr/gitscrub/config"
	"github.com/masmgr/gitscrub/internal/git"
	"github.com/masmgr/gitscrub/internal/scrub"
)

// Scrub fetches the commit history of the repository at repoPath and
// reconciles the working tree to the given position in one shot.
// Position 0 restores the configured default branch; other positions
// check out that commit's hash (detached HEAD). Out-of-range positions
// are clamped.
func Scrub(repoPath string, index int) error {
	cfg, err := config.LoadConfig("")
	if err != nil {
		return err
	}

	reader := git.NewCLIReader(nil, git.ReadOptions{
		Limit:      cfg.History.Limit,
		DateFormat: cfg.History.DateFormat,
		Timeout:    cfg.Exec.Timeout(),
		GitPath:    cfg.Exec.GitPath,
	})
	coordinator := git.NewCoordinator(nil, git.CheckoutOptions{
		DefaultBranch: cfg.History.DefaultBranch,
		Timeout:       cfg.Exec.Timeout(),
		GitPath:       cfg.Exec.GitPath,
	})

	return scrubWith(context.Background(), reader, coordinator, cfg, repoPath, index)
}

func scrubWith(ctx context.Context, reader git.HistoryReader, reconciler git.Reconciler, cfg *config.Config, repoPath string, index int) error {
	session := scrub.NewSession(repoPath, reader, reconciler)

	if err := session.Refresh(ctx); err != nil {
		return err
	}
	if session.History().Empty() {
		fmt.Println("No commits found in the repository.")
		return nil
	}

	settled := session.History().Clamp(index)
	if settled == session.Index() {
		// A fresh session starts at the tip without a checkout; an explicit
		// one-shot request still reconciles so position 0 restores the branch.
		if err := reconciler.Reconcile(ctx, repoPath, session.History(), settled); err != nil {
			return err
		}
	} else if _, err := session.SetIndex(ctx, settled); err != nil {
		return err
	}

	commit, _ := session.Selected()
	if settled == 0 {
		color.Green("Position 0 (tip): %s follows %s", commit.ShortHash(), cfg.History.DefaultBranch)
	} else {
		color.Yellow("Position %d of %d: %s (detached HEAD)", settled, session.History().Len()-1, commit.ShortHash())
		fmt.Printf("  %s  %s  %s\n", commit.When.Format("2006-01-02 15:04"), commit.Author, commit.Subject)
	}
	return nil
}

func parsePositionArg(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q: expected an integer", s)
	}
	return i, nil
}
