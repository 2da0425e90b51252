package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/ellips/ellipsis"
)

func lsCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "ls",
		Usage: "list the sentences stored in a results database",
		Flags: []cli.Flag{
			dbFlag(),
			&cli.StringFlag{
				Name:    flagClass,
				Aliases: []string{"c"},
				Usage:   "only list sentences of this class (plain, elliptical, copula)",
			},
		},
		Action: func(c *cli.Context) error {
			dbPath := c.String(flagDb)
			if dbPath == "" {
				return fmt.Errorf("no database given, use --%s", flagDb)
			}

			class := ellipsis.Class(c.String(flagClass))
			if class != "" && !validClass(class) {
				return fmt.Errorf("unknown class %q", class)
			}

			store, err := openResultStore(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(class)
			if err != nil {
				return err
			}

			for _, r := range records {
				fmt.Fprintf(ui.Out, "📖 %s:%d %s %s %d\n", r.File, r.Position, r.SentId, r.Class, r.Orphans)
			}
			return nil
		},
	}
}

func validClass(class ellipsis.Class) bool {
	for _, c := range ellipsis.Classes() {
		if c == class {
			return true
		}
	}
	return false
}
