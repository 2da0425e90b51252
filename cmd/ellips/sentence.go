package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/ellips/ellipsis"
	"github.com/revelaction/ellips/explore"
	"github.com/revelaction/ellips/render"
)

func sentenceCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "sentence",
		Usage:     "show the classification and the orphans of one sentence",
		ArgsUsage: "file.conllu sent_id|position",
		Flags: append(exclusionFlags(false), &cli.BoolFlag{
			Name:  flagNoColor,
			Usage: "do not color the orphans",
		}),
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return fmt.Errorf("sentence command needs a file and a sentence, got %d arguments", c.NArg())
			}

			cl, err := newClassifier(c)
			if err != nil {
				return err
			}

			results, err := classifyCorpus(cl, c.Args().Get(0), ui)
			if err != nil {
				return err
			}

			r := render.NewRenderer()
			r.W = ui.Out
			r.HasColor = !c.Bool(flagNoColor)
			r.HasPrefix = true
			r.Format = "table"

			h := explore.NewHandler(results, r)
			idxs, err := h.Lookup(c.Args().Get(1))
			if err != nil {
				return err
			}

			for _, i := range idxs {
				r.Result(results[i], fmt.Sprintf("✍  %d ", i+1))
			}
			return nil
		},
	}
}

// classifyCorpus classifies the blocks of a corpus file, in memory.
func classifyCorpus(cl *ellipsis.Classifier, path string, ui UI) ([]ellipsis.Result, error) {
	results := []ellipsis.Result{}
	_, err := processFile(cl, path, func(pos int, res ellipsis.Result) error {
		results = append(results, res)
		return nil
	}, nil, ui)
	if err != nil {
		return nil, err
	}
	return results, nil
}
