package cmd

import (
	"fmt"

	"github.com/masmgr/gitscrub/internal/discover"
	"github.com/urfave/cli/v2"
)

// ReposCmd returns the repos command.
func ReposCmd() *cli.Command {
	return &cli.Command{
		Name:      "repos",
		Usage:     "List Git repositories under a directory",
		ArgsUsage: "[root]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "include",
				Usage: "Glob patterns repositories must match (can be specified multiple times)",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Glob patterns to skip (can be specified multiple times)",
			},
			&cli.IntFlag{
				Name:  "max-depth",
				Usage: "Directory depth to search (0 = unlimited)",
			},
		},
		Action: reposAction,
	}
}

func reposAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	root := c.Args().Get(0)
	if root == "" {
		root = "."
	}

	opts := discover.Options{
		Include:  cfg.Discover.Include,
		Exclude:  cfg.Discover.Exclude,
		MaxDepth: cfg.Discover.MaxDepth,
	}
	if includes := c.StringSlice("include"); len(includes) > 0 {
		opts.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		opts.Exclude = excludes
	}
	if c.IsSet("max-depth") {
		opts.MaxDepth = c.Int("max-depth")
	}

	repos, err := discover.Find(root, opts)
	if err != nil {
		return err
	}

	for _, repo := range repos {
		fmt.Println(repo)
	}
	return nil
}
