package zombiezen

import (
	"path/filepath"
	"testing"

	"github.com/revelaction/ellips/conllu"
	"github.com/revelaction/ellips/ellipsis"
)

func TestResultStore(t *testing.T) {
	pool, err := NewPool(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatal(err)
	}

	if err := CreateSchemas(pool, ResultsSchema); err != nil {
		t.Fatal(err)
	}

	store := NewResultStore(pool)
	defer store.Close()

	s, err := conllu.Parse("# sent_id = s1\n1\tJaan\tJaan\tPROPN\tS\t_\t0\troot\t_\t_")
	if err != nil {
		t.Fatal(err)
	}

	writes := []ellipsis.Result{
		{Class: ellipsis.Elliptical, Sentence: s, Text: s.Text(), Orphans: 2},
		{Class: ellipsis.Plain, Text: "# skipped"},
	}
	for i, res := range writes {
		if err := store.Write("a.conllu", i+1, res); err != nil {
			t.Fatal(err)
		}
	}

	// rewriting a position replaces its row
	if err := store.Write("a.conllu", 2, ellipsis.Result{Class: ellipsis.Copula, Text: "# copula"}); err != nil {
		t.Fatal(err)
	}

	all, err := store.List("")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}

	r := all[0]
	if r.SentId != "s1" || r.Class != ellipsis.Elliptical || r.Orphans != 2 || r.Position != 1 || r.Text != s.Text() {
		t.Errorf("unexpected record %+v", r)
	}

	copulas, err := store.List(ellipsis.Copula)
	if err != nil {
		t.Fatal(err)
	}
	if len(copulas) != 1 || copulas[0].Text != "# copula" {
		t.Errorf("unexpected copula records %+v", copulas)
	}
}
