package main

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/revelaction/ellips/stat"
)

func report(w io.Writer, s stat.Stats) {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "Files: %d\n", s.NumFiles)
	p.Fprintf(w, "Sentences: %d\n", s.NumSentences)
	p.Fprintf(w, "Elliptical sentences: %d\n", s.NumAllElliptical())
	p.Fprintf(w, "Percentage of elliptical sentences: %.4f\n", s.Ratio(s.NumAllElliptical()))
	p.Fprintf(w, "Olema-verb elliptical sentences: %d\n", s.NumCopula)
	p.Fprintf(w, "Percentage of olema-verb elliptical sentences: %.4f\n", s.Ratio(s.NumCopula))
	p.Fprintf(w, "Other verb elliptical sentences: %d\n", s.NumElliptical)
	p.Fprintf(w, "Percentage of other verb elliptical sentences: %.4f\n", s.Ratio(s.NumElliptical))
	p.Fprintf(w, "Orphans: %d\n", s.NumOrphans)
	p.Fprintf(w, "Not annotated (excluded): %d\n", s.NumExcluded)
	p.Fprintf(w, "Skipped (endings): %d\n", s.NumSkipped)
	if s.NumFailed > 0 {
		p.Fprintf(w, "Failed: %d\n", s.NumFailed)
	}
}
