package main

import (
	"fmt"
	"path/filepath"

	"github.com/gosuri/uiprogress"

	"github.com/revelaction/ellips/ellipsis"
	"github.com/revelaction/ellips/file"
	"github.com/revelaction/ellips/stat"
)

// resultFunc receives the result of the block at position pos, in corpus
// order.
type resultFunc func(pos int, res ellipsis.Result) error

// processFile classifies every block of the corpus file at path. A failing
// block is reported on ui.Err and still handed to fn with its original text.
// The returned Stats only count this file.
func processFile(cl *ellipsis.Classifier, path string, fn resultFunc, p *uiprogress.Progress, ui UI) (stat.Stats, error) {
	blocks, err := file.ReadCorpus(path)
	if err != nil {
		return stat.Stats{}, err
	}

	var bar *uiprogress.Bar
	if p != nil {
		name := filepath.Base(path)
		bar = p.AddBar(len(blocks))
		bar.AppendCompleted()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return name
		})
	}

	hdl := stat.NewHandler()
	hdl.AddFile()
	for i, block := range blocks {
		pos := i + 1
		res, err := cl.ProcessBlock(block)
		hdl.Aggregate(res, err)
		if err != nil {
			fprintErr(ui.Err, fmt.Errorf("%s: block %d: %w", path, pos, err))
		}

		if fn != nil {
			if err := fn(pos, res); err != nil {
				return hdl.Get(), fmt.Errorf("%s: block %d: %w", path, pos, err)
			}
		}

		if bar != nil {
			bar.Incr()
		}
	}

	return hdl.Get(), nil
}

// processFiles runs processFile over files and sums the Stats.
func processFiles(cl *ellipsis.Classifier, files []string, fn func(path string) resultFunc, progress bool, ui UI) (stat.Stats, error) {
	var p *uiprogress.Progress
	if progress {
		p = uiprogress.New()
		p.SetOut(ui.Err)
		p.Start()
		defer p.Stop()
	}

	var total stat.Stats
	for _, path := range files {
		var rf resultFunc
		if fn != nil {
			rf = fn(path)
		}

		s, err := processFile(cl, path, rf, p, ui)
		total = total.Add(s)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}
