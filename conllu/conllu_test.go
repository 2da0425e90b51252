package conllu

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRow(t *testing.T) {
	row := strings.Split("5	poole	pool	ADP	K	Case=Gen|Number=Sing	4	nmod	_	_", FieldSeparator)

	parsed, err := ParseRow(row, 3)
	if err != nil {
		t.Fatal(err.Error())
	}

	if parsed.Id != "5" {
		t.Errorf("Expected ID 5, got %s", parsed.Id)
	}

	if parsed.Form != "poole" || parsed.Lemma != "pool" {
		t.Errorf("Expected FORM poole LEMMA pool, got %s %s", parsed.Form, parsed.Lemma)
	}

	if parsed.XPos != "K" || parsed.UPos != "ADP" {
		t.Errorf("Expected XPOS K UPOS ADP, got %s %s", parsed.XPos, parsed.UPos)
	}

	if parsed.Feats.Get("Case") != "Gen" {
		t.Errorf("Expected Case Gen, got %s", parsed.Feats.Get("Case"))
	}

	if parsed.Head != "4" || parsed.Dep != "nmod" {
		t.Errorf("Expected HEAD 4 DEPREL nmod, got %s %s", parsed.Head, parsed.Dep)
	}

	if parsed.Line != 3 {
		t.Errorf("Expected line 3, got %d", parsed.Line)
	}
}

func TestParseRowWrongFields(t *testing.T) {
	row := strings.Split("5	poole	pool	ADP	K	Case=Gen	4	nmod	_", FieldSeparator)

	if _, err := ParseRow(row, 0); err == nil {
		t.Error("expected error for 9 fields")
	}
}

func TestParseFeaturesRepeating(t *testing.T) {
	feats, err := ParseFeatures("Case=Gen|Number=Sing|Number=Plur")
	if err != nil {
		t.Fatal(err)
	}

	if feats["Number"] != "Sing,Plur" {
		t.Errorf("Failure concatenating repeated features: should be Sing,Plur got %s", feats["Number"])
	}

	feats, err = ParseFeatures("_")
	if err != nil || feats != nil {
		t.Errorf("expected nil features for _, got %v %v", feats, err)
	}

	if _, err := ParseFeatures("Case"); err == nil {
		t.Error("expected error for feature without value")
	}
}

func TestParse(t *testing.T) {
	block := `# sent_id = s9
# text = Mari on õpetaja.
1	Mari	Mari	PROPN	S	Case=Nom	3	nsubj:cop	_	_
2-3	onõpetaja	_	_	_	_	_	_	_	_
2	on	olema	AUX	V	VerbForm=Fin	3	cop	_	_
3	õpetaja	õpetaja	NOUN	S	Case=Nom	0	root	_	_`

	s, err := Parse(block)
	if err != nil {
		t.Fatal(err)
	}

	if s.Id != "s9" {
		t.Errorf("expected sent_id s9, got %q", s.Id)
	}

	if len(s.Tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %d", len(s.Tokens))
	}

	mw, _ := s.Token("2-3")
	if mw.Head != "" {
		t.Errorf("expected empty head for multiword row, got %q", mw.Head)
	}

	if s.Text() != block {
		t.Errorf("text differs from block")
	}

	if s.Tokens[3].Line != 5 {
		t.Errorf("expected line 5 for token 3, got %d", s.Tokens[3].Line)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []string{
		"# sent_id = x",
		"1	Mari	Mari	PROPN	S	Case=Nom	3",
		"1	Mari	Mari	PROPN	S	Case	3	nsubj	_	_",
	}

	for _, block := range tests {
		if _, err := Parse(block); !errors.Is(err, ErrMalformed) {
			t.Errorf("expected ErrMalformed for %q, got %v", block, err)
		}
	}
}

func TestSplitBlocks(t *testing.T) {
	data := "# a\n1\tx\n\n# b\n1\ty\n\n\n# c\n1\tz\n"

	blocks := SplitBlocks(data)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d: %q", len(blocks), blocks)
	}

	if blocks[1] != "# b\n1\ty" || blocks[2] != "# c\n1\tz" {
		t.Errorf("unexpected blocks %q", blocks)
	}

	if len(SplitBlocks("\n\n")) != 0 {
		t.Errorf("expected no blocks")
	}
}
