package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/revelaction/ellips/conllu"
	"github.com/revelaction/ellips/ellipsis"
)

const block = `# sent_id = s1
1	Jaan	Jaan	PROPN	S	Case=Nom	2	nsubj	_	_
2	läks	minema	VERB	V	VerbForm=Fin	0	root	_	_
3	Tallinna	Tallinn	PROPN	S	Case=Ill	2	obl	_	_
4	ja	ja	CCONJ	J	_	5	cc	_	_
5	Mari	Mari	PROPN	S	Case=Nom	2	conj	_	_
6	Tartusse	Tartu	PROPN	S	Case=Ill	5	obl	_	_`

func classified(t *testing.T) ellipsis.Result {
	t.Helper()
	s, err := conllu.Parse(block)
	if err != nil {
		t.Fatal(err)
	}

	res, err := ellipsis.NewClassifier(ellipsis.DefaultRules(), ellipsis.Exclusions{}).Classify(s)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestSentenceString(t *testing.T) {
	res := classified(t)

	r := NewRenderer()
	if got := r.SentenceString(res.Sentence); got != "Jaan läks Tallinna ja Mari Tartusse" {
		t.Errorf("unexpected text %q", got)
	}

	r.HasColor = true
	if got := r.SentenceString(res.Sentence); !strings.Contains(got, Green256+"Tartusse"+Off) {
		t.Errorf("orphan not highlighted in %q", got)
	}
}

func TestSentenceStringMultiword(t *testing.T) {
	s, err := conllu.Parse(`# sent_id = mw
1-2	vámonos	_	_	_	_	_	_	_	_
1	vamos	ir	VERB	V	_	0	root	_	_
2	nos	nosotros	PRON	P	_	1	obj	_	_
3	ya	ya	ADV	D	_	1	advmod	_	_
3.1	x	x	_	_	_	_	_	_	_`)
	if err != nil {
		t.Fatal(err)
	}

	if got := NewRenderer().SentenceString(s); got != "vámonos ya" {
		t.Errorf("unexpected text %q", got)
	}
}

func TestResultFormats(t *testing.T) {
	res := classified(t)

	var buf bytes.Buffer
	r := NewRenderer()
	r.W = &buf
	r.HasPrefix = true

	r.Result(res, "")
	if got := buf.String(); got != "[elliptical] Jaan läks Tallinna ja Mari Tartusse\n" {
		t.Errorf("unexpected text output %q", got)
	}

	buf.Reset()
	r.Format = "table"
	r.Result(res, "")
	if !strings.Contains(buf.String(), "orphan:obl") {
		t.Errorf("table output without the rewritten relation:\n%s", buf.String())
	}

	buf.Reset()
	r.Format = "conllu"
	r.Result(res, "")
	if !strings.Contains(buf.String(), res.Text) {
		t.Errorf("conllu output without the block:\n%s", buf.String())
	}
}

func TestNextFormat(t *testing.T) {
	r := NewRenderer()
	for _, want := range []string{"table", "conllu", "text"} {
		r.NextFormat()
		if r.Format != want {
			t.Errorf("expected %s, got %s", want, r.Format)
		}
	}
}
