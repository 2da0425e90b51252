package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/ellips/ellipsis"
	sent "github.com/revelaction/ellips/sentence"
)

const Defaultformat = "text"

var (
	Teal      = "\033[1;36m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

func SupportedFormats() []string {
	return []string{"text", "table", "conllu"}
}

type Renderer struct {
	HasColor bool

	HasPrefix bool

	// Format determines how a sentence is shown
	//
	// text: the word forms, orphans highlighted
	// table: one token per line with the current relation
	// conllu: the block with orphan rewrites applied
	Format string

	W io.Writer
}

func NewRenderer() *Renderer {
	return &Renderer{Format: Defaultformat, W: os.Stdout}
}

// Result writes a classified sentence in the renderer Format.
func (r *Renderer) Result(res ellipsis.Result, prefix string) {
	if r.HasPrefix {
		prefix = r.classPrefix(res.Class) + prefix
	}

	if res.Sentence == nil {
		fmt.Fprintf(r.W, "%s%s\n", prefix, res.Text)
		return
	}

	switch r.Format {
	case "table":
		fmt.Fprintf(r.W, "%s%s\n", prefix, r.SentenceString(res.Sentence))
		r.Tokens(res.Sentence)
	case "conllu":
		fmt.Fprintf(r.W, "%s\n%s\n\n", prefix, res.Text)
	default:
		fmt.Fprintf(r.W, "%s%s\n", prefix, r.SentenceString(res.Sentence))
	}
}

// SentenceString returns the word forms of the sentence. Multiword ranges are
// shown instead of their parts and empty nodes are left out.
func (r *Renderer) SentenceString(s *sent.Sentence) string {
	words := []string{}
	var rangeEnd string
	for _, t := range s.Tokens {
		if strings.Contains(t.Id, ".") {
			continue
		}

		if _, end, ok := strings.Cut(t.Id, "-"); ok {
			rangeEnd = end
			words = append(words, t.Form)
			continue
		}

		if rangeEnd != "" {
			if t.Id == rangeEnd {
				rangeEnd = ""
			}
			continue
		}

		words = append(words, r.colorToken(s, t))
	}

	return strings.Join(words, " ")
}

// Tokens writes one line per token with the relation after the rewrites.
func (r *Renderer) Tokens(s *sent.Sentence) {
	for _, t := range s.Tokens {
		dep := s.CurrentDep(t.Id)
		if r.HasColor && s.IsOrphan(t.Id) {
			dep = Green256 + dep + Off
		}
		fmt.Fprintf(r.W, "%20q %15q %4s %6s %6s %s\n", t.Form, t.Lemma, t.XPos, t.Id, t.Head, dep)
	}
}

func (r *Renderer) colorToken(s *sent.Sentence, t sent.Token) string {
	if !r.HasColor || !s.IsOrphan(t.Id) {
		return t.Form
	}

	return Green256 + t.Form + Off
}

func (r *Renderer) classPrefix(c ellipsis.Class) string {
	label := fmt.Sprintf("[%-10s] ", c)
	if !r.HasColor {
		return label
	}

	switch c {
	case ellipsis.Elliptical:
		return Yellow256 + label + Off
	case ellipsis.Copula:
		return Teal + label + Off
	}
	return Grey256 + label + Off
}

// NextFormat sets the next Format in the SupportedFormats() order.
func (r *Renderer) NextFormat() {

	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			switch i {
			case len(supported) - 1:
				r.Format = supported[0]
			default:
				r.Format = supported[i+1]
			}

			break
		}
	}
}

func (r *Renderer) NextPrefix() {

	// toggle
	r.HasPrefix = !r.HasPrefix
}
