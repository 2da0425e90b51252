package stat

import (
	"errors"
	"testing"

	"github.com/revelaction/ellips/ellipsis"
)

func TestAggregate(t *testing.T) {
	h := NewHandler()
	h.AddFile()

	h.Aggregate(ellipsis.Result{Class: ellipsis.Elliptical, Orphans: 2}, nil)
	h.Aggregate(ellipsis.Result{Class: ellipsis.Elliptical, Excluded: true}, nil)
	h.Aggregate(ellipsis.Result{Class: ellipsis.Copula}, nil)
	h.Aggregate(ellipsis.Result{Class: ellipsis.Plain}, nil)
	h.Aggregate(ellipsis.Result{Class: ellipsis.Plain, Skipped: true}, nil)
	h.Aggregate(ellipsis.Result{Class: ellipsis.Plain}, errors.New("malformed"))

	s := h.Get()
	want := Stats{
		NumSentences:  6,
		NumElliptical: 2,
		NumCopula:     1,
		NumExcluded:   1,
		NumSkipped:    1,
		NumFailed:     1,
		NumOrphans:    2,
		NumFiles:      1,
	}
	if s != want {
		t.Fatalf("expected %+v, got %+v", want, s)
	}

	if s.NumAllElliptical() != 3 {
		t.Errorf("expected 3 elliptical sentences, got %d", s.NumAllElliptical())
	}

	if r := s.Ratio(s.NumAllElliptical()); r != 0.5 {
		t.Errorf("expected ratio 0.5, got %v", r)
	}

	if r := s.Ratio(s.NumCopula); r != 0.1667 {
		t.Errorf("expected ratio 0.1667, got %v", r)
	}
}

func TestRatioNoSentences(t *testing.T) {
	var s Stats
	if s.Ratio(0) != 0 {
		t.Errorf("expected 0 ratio without sentences")
	}
}

func TestAdd(t *testing.T) {
	a := Stats{NumSentences: 3, NumElliptical: 1, NumFiles: 1}
	b := Stats{NumSentences: 2, NumCopula: 1, NumOrphans: 4, NumFiles: 1}

	got := a.Add(b)
	want := Stats{NumSentences: 5, NumElliptical: 1, NumCopula: 1, NumOrphans: 4, NumFiles: 2}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
