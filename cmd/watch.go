package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/masmgr/gitscrub/internal/watch"
	"github.com/urfave/cli/v2"
)

// WatchCmd returns the watch command.
func WatchCmd() *cli.Command {
	return &cli.Command{
		Name:   "watch",
		Usage:  "Report history position changes as HEAD moves",
		Flags:  commonFlags(),
		Action: watchAction,
	}
}

func watchAction(c *cli.Context) error {
	cmdCtx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	watcher, err := watch.NewHeadWatcher(cmdCtx.RepoPath)
	if err != nil {
		return err
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching %s (Ctrl-C to stop)\n", cmdCtx.RepoPath)
	printPosition(cmdCtx, c)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-watcher.Errors():
			return err
		case <-watcher.Events():
			// HEAD may now point outside the fetched history (e.g. a new
			// commit was made); refetch so positions stay meaningful.
			refreshed, err := cmdCtx.Reader.ReadHistory(ctx, cmdCtx.RepoPath)
			if err == nil {
				cmdCtx.History = refreshed
			}
			printPosition(cmdCtx, c)
		}
	}
}

func printPosition(cmdCtx *CommandContext, c *cli.Context) {
	state, err := cmdCtx.Inspector().Head(c.Context, cmdCtx.RepoPath)
	if err != nil {
		fmt.Printf("HEAD: unknown (%v)\n", err)
		return
	}

	idx := cmdCtx.History.IndexOf(state.Hash)
	switch {
	case state.Detached && idx >= 0:
		commit, _ := cmdCtx.History.At(idx)
		color.Yellow("HEAD -> %.8s (position %d, detached): %s", state.Hash, idx, commit.Subject)
	case state.Detached:
		color.Yellow("HEAD -> %.8s (detached, outside fetched history)", state.Hash)
	case idx >= 0:
		color.Green("HEAD -> %s at %.8s (position %d)", state.Branch, state.Hash, idx)
	default:
		color.Green("HEAD -> %s at %.8s", state.Branch, state.Hash)
	}
}
