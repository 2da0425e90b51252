package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "ellips: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:      "ellips",
		Usage:     "find elliptical sentences and annotate orphans in CoNLL-U corpora",
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		// errors are printed by main
		ExitErrHandler: func(*cli.Context, error) {},
		HideVersion:    true,
		Commands: []*cli.Command{
			annotateCommand(ui),
			statCommand(ui),
			sentenceCommand(ui),
			exploreCommand(ui),
			lsCommand(ui),
			versionCommand(ui),
		},
	}
}
