package main

import (
	"log"
	"os"

	"github.com/masmgr/gitscrub/cmd"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cmd.App()

	// Default action: `gitscrub <repo> [position]` scrubs in one shot.
	app.Action = func(c *cli.Context) error {
		if c.NArg() == 0 {
			return cli.ShowAppHelp(c)
		}

		index := 0
		if c.NArg() > 1 {
			i, err := parsePositionArg(c.Args().Get(1))
			if err != nil {
				return err
			}
			index = i
		}

		return Scrub(c.Args().Get(0), index)
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
