package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// CheckoutCmd returns the checkout command.
func CheckoutCmd() *cli.Command {
	return &cli.Command{
		Name:      "checkout",
		Aliases:   []string{"co"},
		Usage:     "Check out the commit at a history position",
		ArgsUsage: "<position>",
		Description: "Position 0 is the tip and restores the configured default branch\n" +
			"(a normal, attached HEAD). Any other position checks out that commit's\n" +
			"hash directly, leaving HEAD detached. Out-of-range positions are\n" +
			"clamped to the valid range.",
		Flags:  commonFlags(),
		Action: checkoutAction,
	}
}

func checkoutAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one argument: the history position")
	}
	target, err := parseIndexArg(c.Args().Get(0))
	if err != nil {
		return err
	}

	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	if !ctx.HasCommits() {
		ctx.PrintNoCommitsMessage()
		return nil
	}

	idx := ctx.History.Clamp(target)
	if err := ctx.Coordinator().Reconcile(c.Context, ctx.RepoPath, ctx.History, idx); err != nil {
		return err
	}

	commit, _ := ctx.History.At(idx)
	if idx == 0 {
		color.Green("Checked out %s (position 0, tip)", ctx.Config.History.DefaultBranch)
	} else {
		color.Yellow("Checked out %s (position %d, detached HEAD)", commit.ShortHash(), idx)
		fmt.Printf("  %s: %s\n", commit.Author, commit.Subject)
	}
	return nil
}

// parseIndexArg parses the positional history index argument.
func parseIndexArg(s string) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q: expected an integer", s)
	}
	return idx, nil
}
