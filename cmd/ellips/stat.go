package main

import (
	"errors"

	"github.com/urfave/cli/v2"
)

func statCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "classify corpus files and print statistics, without writing results",
		ArgsUsage: "file.conllu...",
		Flags: append(exclusionFlags(false), &cli.BoolFlag{
			Name:  flagNoProgress,
			Usage: "do not show the progress bar",
		}),
		Action: func(c *cli.Context) error {
			files := c.Args().Slice()
			if len(files) == 0 {
				return errors.New("no corpus files given")
			}

			cl, err := newClassifier(c)
			if err != nil {
				return err
			}

			stats, err := processFiles(cl, files, nil, !c.Bool(flagNoProgress), ui)
			if err != nil {
				return err
			}

			report(ui.Out, stats)
			return nil
		},
	}
}
