package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/ellips/explore"
	"github.com/revelaction/ellips/render"
)

func exploreCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "explore",
		Usage:     "browse the classified sentences of a corpus file in a REPL",
		ArgsUsage: "file.conllu",
		Flags: append(exclusionFlags(false), &cli.BoolFlag{
			Name:  flagNoColor,
			Usage: "do not color the orphans",
		}),
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("explore command needs one file, got %d arguments", c.NArg())
			}

			cl, err := newClassifier(c)
			if err != nil {
				return err
			}

			results, err := classifyCorpus(cl, c.Args().First(), ui)
			if err != nil {
				return err
			}

			r := render.NewRenderer()
			r.W = ui.Out
			r.HasColor = !c.Bool(flagNoColor)
			r.HasPrefix = true

			return explore.NewHandler(results, r).Run()
		},
	}
}
