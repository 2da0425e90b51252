package stat

import (
	"math"

	"github.com/revelaction/ellips/ellipsis"
)

type Handler struct {
	stats Stats
}

// Stats are the counters of a run. NumSentences counts every block,
// including the skipped and failed ones.
type Stats struct {
	NumSentences  int
	NumElliptical int
	NumCopula     int
	NumExcluded   int
	NumSkipped    int
	NumFailed     int
	NumOrphans    int
	NumFiles      int
}

// NumAllElliptical is the number of verb and copula elliptical sentences.
func (s Stats) NumAllElliptical() int {
	return s.NumElliptical + s.NumCopula
}

// Ratio returns n / NumSentences rounded to 4 decimals.
func (s Stats) Ratio(n int) float64 {
	if s.NumSentences == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(s.NumSentences)*10000) / 10000
}

// Add returns the sum of two Stats.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		NumSentences:  s.NumSentences + o.NumSentences,
		NumElliptical: s.NumElliptical + o.NumElliptical,
		NumCopula:     s.NumCopula + o.NumCopula,
		NumExcluded:   s.NumExcluded + o.NumExcluded,
		NumSkipped:    s.NumSkipped + o.NumSkipped,
		NumFailed:     s.NumFailed + o.NumFailed,
		NumOrphans:    s.NumOrphans + o.NumOrphans,
		NumFiles:      s.NumFiles + o.NumFiles,
	}
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	return &Handler{}
}

// Aggregate counts one processed block. err is the processing error of the
// block, if any.
func (h *Handler) Aggregate(res ellipsis.Result, err error) {
	h.stats.NumSentences++
	if err != nil {
		h.stats.NumFailed++
		return
	}

	if res.Skipped {
		h.stats.NumSkipped++
		return
	}

	switch res.Class {
	case ellipsis.Elliptical:
		h.stats.NumElliptical++
	case ellipsis.Copula:
		h.stats.NumCopula++
	}

	if res.Excluded {
		h.stats.NumExcluded++
	}
	h.stats.NumOrphans += res.Orphans
}

// AddFile counts a processed input file.
func (h *Handler) AddFile() {
	h.stats.NumFiles++
}
