package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/ellips/ellipsis"
	"github.com/revelaction/ellips/file"
)

const (
	flagFiles      = "files"
	flagResults    = "results-path"
	flagExclusions = "exclusions-file"
	flagEndings    = "endings-file"
	flagDb         = "db"
	flagNoProgress = "no-progress"
	flagNoColor    = "no-color"
	flagClass      = "class"
)

// exclusionFlags are the exclusion and endings list flags. The batch
// command requires them, the inspection commands do not.
func exclusionFlags(required bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     flagExclusions,
			Aliases:  []string{"x"},
			Usage:    "file with sentence identifiers (sent_id-s) of sentences not to annotate",
			EnvVars:  []string{"ELLIPS_EXCLUSIONS_FILE"},
			Required: required,
		},
		&cli.StringFlag{
			Name:     flagEndings,
			Aliases:  []string{"e"},
			Usage:    "file with sentence endings whose sentences are passed through",
			EnvVars:  []string{"ELLIPS_ENDINGS_FILE"},
			Required: required,
		},
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagDb,
		Usage:   "SQLite file storing one row per classified sentence",
		EnvVars: []string{"ELLIPS_DB"},
	}
}

// newClassifier builds a classifier with the default rules and the lists
// given in the exclusion flags.
func newClassifier(c *cli.Context) (*ellipsis.Classifier, error) {
	var ex ellipsis.Exclusions

	if path := c.String(flagExclusions); path != "" {
		list, err := file.ReadList(path)
		if err != nil {
			return nil, err
		}
		ex.Sentences = list
	}

	if path := c.String(flagEndings); path != "" {
		list, err := file.ReadList(path)
		if err != nil {
			return nil, err
		}
		ex.Endings = list
	}

	return ellipsis.NewClassifier(ellipsis.DefaultRules(), ex), nil
}
