package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// StatusCmd returns the status command.
func StatusCmd() *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Show where HEAD sits within the commit history",
		Flags:  commonFlags(),
		Action: statusAction,
	}
}

func statusAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	state, err := ctx.Inspector().Head(c.Context, ctx.RepoPath)
	if err != nil {
		return err
	}

	fmt.Printf("Repository: %s\n", ctx.RepoPath)
	if state.Detached {
		color.Yellow("HEAD: %s (detached)", state.Hash)
	} else {
		color.Green("HEAD: %s (%s)", state.Hash, state.Branch)
	}

	idx := ctx.History.IndexOf(state.Hash)
	switch {
	case idx == 0:
		fmt.Println("Position: 0 (tip)")
	case idx > 0:
		commit, _ := ctx.History.At(idx)
		fmt.Printf("Position: %d of %d: %s\n", idx, ctx.History.Len()-1, commit.Subject)
	default:
		fmt.Println("Position: not in the fetched history")
	}
	return nil
}
