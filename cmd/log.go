package cmd

import (
	"time"

	"github.com/masmgr/gitscrub/internal/git"
	"github.com/masmgr/gitscrub/internal/output"
	"github.com/urfave/cli/v2"
)

// LogCmd returns the log command.
func LogCmd() *cli.Command {
	return &cli.Command{
		Name:    "log",
		Aliases: []string{"l"},
		Usage:   "Fetch and print the commit history",
		Flags:   commonFlags(),
		Action:  logAction,
	}
}

func logAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	// HEAD state is best-effort decoration: the listing is still useful when
	// it cannot be resolved (e.g. gogit backend on a host without git).
	var head *git.HeadState
	if state, err := ctx.Inspector().Head(c.Context, ctx.RepoPath); err == nil {
		head = &state
	}

	report := &output.HistoryReport{
		RepoPath:      ctx.RepoPath,
		DefaultBranch: ctx.Config.History.DefaultBranch,
		GeneratedAt:   time.Now(),
		Head:          head,
		Commits:       ctx.History,
	}

	opts := OutputOptions(c)
	return output.NewHistoryWriter(opts.Format).Write(report, opts)
}
