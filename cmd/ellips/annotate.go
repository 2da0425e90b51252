package main

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/ellips/ellipsis"
	"github.com/revelaction/ellips/storage"
	"github.com/revelaction/ellips/storage/filesystem"
	"github.com/revelaction/ellips/storage/sqlite/zombiezen"
)

func annotateCommand(ui UI) *cli.Command {
	flags := []cli.Flag{
		&cli.StringSliceFlag{
			Name:    flagFiles,
			Aliases: []string{"f"},
			Usage:   "corpus files to be processed (also accepted as arguments)",
		},
		&cli.StringFlag{
			Name:    flagResults,
			Aliases: []string{"r"},
			Usage:   "directory where the result files are stored",
			Value:   "results",
			EnvVars: []string{"ELLIPS_RESULTS_PATH"},
		},
		dbFlag(),
		&cli.BoolFlag{
			Name:  flagNoProgress,
			Usage: "do not show the progress bar",
		},
	}

	return &cli.Command{
		Name:      "annotate",
		Usage:     "find elliptical sentences and write orphan annotated corpora",
		ArgsUsage: "[file.conllu...]",
		Flags:     append(flags, exclusionFlags(true)...),
		Action: func(c *cli.Context) error {
			files := append(c.StringSlice(flagFiles), c.Args().Slice()...)
			if len(files) == 0 {
				return errors.New("no corpus files given")
			}

			cl, err := newClassifier(c)
			if err != nil {
				return err
			}

			w, err := newResultWriter(c.String(flagResults), c.String(flagDb))
			if err != nil {
				return err
			}

			stats, err := processFiles(cl, files, func(path string) resultFunc {
				return func(pos int, res ellipsis.Result) error {
					return w.Write(path, pos, res)
				}
			}, !c.Bool(flagNoProgress), ui)

			if cerr := w.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}

			report(ui.Out, stats)
			return nil
		},
	}
}

// newResultWriter returns the results directory writer, and the SQLite
// store too if dbPath is set.
func newResultWriter(dir, dbPath string) (storage.ResultWriter, error) {
	fs, err := filesystem.NewResultStore(dir)
	if err != nil {
		return nil, err
	}

	if dbPath == "" {
		return fs, nil
	}

	db, err := openResultStore(dbPath)
	if err != nil {
		fs.Close()
		return nil, err
	}

	return storage.MultiWriter(fs, db), nil
}

func openResultStore(dbPath string) (*zombiezen.ResultStore, error) {
	pool, err := zombiezen.NewPool(dbPath)
	if err != nil {
		return nil, err
	}

	if err := zombiezen.CreateSchemas(pool, zombiezen.ResultsSchema); err != nil {
		pool.Close()
		return nil, err
	}

	return zombiezen.NewResultStore(pool), nil
}
