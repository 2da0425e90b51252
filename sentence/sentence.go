package sentence

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// RootHead is the HEAD value of the token governing the sentence.
	RootHead = "0"

	// OrphanRel is the relation label marking a dependent of an elided governor.
	OrphanRel = "orphan"

	fieldSeparator = "\t"
	depRelField    = 7
)

// ErrTokenNotFound is returned when a rewrite targets an id that has no row
// in the sentence.
var ErrTokenNotFound = errors.New("token not found")

// Features holds the morphological features (FEATS column) of a Token.
type Features map[string]string

// Get returns the value of the feature name, or the empty string if the
// token has no such feature. It is safe to call on a nil Features.
func (f Features) Get(name string) string {
	if f == nil {
		return ""
	}
	return f[name]
}

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	// Id is the sentence local id (ID column). Multiword ranges ("1-2") and
	// empty nodes ("1.1") keep their textual form.
	Id string `json:"id"`

	// The unmodified word
	Form string `json:"form"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	UPos string `json:"upos"`

	// XPos is the coarse language specific tag ("V" verb, "A" adjective)
	XPos string `json:"xpos"`

	Feats Features `json:"feats,omitempty"`

	// Head is the Id of the governor, RootHead for the root and empty for
	// rows without a governor.
	Head string `json:"head"`

	Dep string `json:"dep"`

	// Line is the index of the token row in Sentence.Lines
	Line int `json:"-"`
}

// IsRoot reports whether the token has no real governor.
func (t Token) IsRoot() bool {
	return t.Head == RootHead
}

// Sentence is a parsed CoNLL-U block. Tokens is the read-only view used for
// classification; Lines is the verbatim block, changed only by MarkOrphan.
type Sentence struct {
	// Id is the value of the "# sent_id" comment, if any
	Id string

	Lines  []string
	Tokens []Token

	byId       map[string]int
	dependents map[string][]int
	orphans    []string
}

// New builds a Sentence and its id and dependents indexes. Tokens must be in
// sentence order and their Line fields must point into lines.
func New(id string, lines []string, tokens []Token) *Sentence {
	s := &Sentence{
		Id:         id,
		Lines:      lines,
		Tokens:     tokens,
		byId:       make(map[string]int, len(tokens)),
		dependents: make(map[string][]int, len(tokens)),
	}

	for i, t := range tokens {
		s.byId[t.Id] = i
		if t.Head == "" {
			continue
		}
		s.dependents[t.Head] = append(s.dependents[t.Head], i)
	}

	return s
}

// Dependents returns the tokens whose Head is the Id of t, in sentence order.
func (s *Sentence) Dependents(t Token) []Token {
	idxs := s.dependents[t.Id]
	deps := make([]Token, 0, len(idxs))
	for _, i := range idxs {
		deps = append(deps, s.Tokens[i])
	}
	return deps
}

// Token returns the token with the given id.
func (s *Sentence) Token(id string) (Token, bool) {
	i, ok := s.byId[id]
	if !ok {
		return Token{}, false
	}
	return s.Tokens[i], true
}

// Root returns the first token without a real governor.
func (s *Sentence) Root() (Token, bool) {
	for _, t := range s.Tokens {
		if t.IsRoot() {
			return t, true
		}
	}
	return Token{}, false
}

// Text returns the block, with any orphan rewrite applied, without the
// terminating blank line.
func (s *Sentence) Text() string {
	return strings.Join(s.Lines, "\n")
}

// Orphans returns the ids of the rewritten tokens in rewrite order.
func (s *Sentence) Orphans() []string {
	return s.orphans
}

// IsOrphan reports whether the row of id was rewritten.
func (s *Sentence) IsOrphan(id string) bool {
	for _, o := range s.orphans {
		if o == id {
			return true
		}
	}
	return false
}

// OrphanLabel returns the relation label that replaces rel when its token
// becomes an orphan. The boolean is false if rel is already an orphan
// label and the row must stay as it is.
func OrphanLabel(rel string) (string, bool) {
	switch {
	case rel == OrphanRel, strings.HasPrefix(rel, OrphanRel+":"):
		return rel, false
	case rel == "nmod", rel == "nummod":
		return OrphanRel + ":obl", true
	}
	return OrphanRel + ":" + rel, true
}

// MarkOrphan rewrites the DEPREL column of the row of id to the orphan label
// of rel. The label is derived from rel, not from the current row content,
// so repeated calls with the same arguments leave the block unchanged. Only
// that column of that row changes.
func (s *Sentence) MarkOrphan(id, rel string) error {
	i, ok := s.byId[id]
	if !ok {
		return fmt.Errorf("%w: id %q in sentence %q", ErrTokenNotFound, id, s.Id)
	}

	label, ok := OrphanLabel(rel)
	if !ok {
		return nil
	}

	ln := s.Tokens[i].Line
	fields := strings.Split(s.Lines[ln], fieldSeparator)
	if len(fields) <= depRelField {
		return fmt.Errorf("row of id %q has %d fields", id, len(fields))
	}

	fields[depRelField] = label
	s.Lines[ln] = strings.Join(fields, fieldSeparator)

	if !s.IsOrphan(id) {
		s.orphans = append(s.orphans, id)
	}
	return nil
}

// CurrentDep returns the DEPREL column of the row of id as it is in Lines,
// that is, with any orphan rewrite applied.
func (s *Sentence) CurrentDep(id string) string {
	i, ok := s.byId[id]
	if !ok {
		return ""
	}

	fields := strings.Split(s.Lines[s.Tokens[i].Line], fieldSeparator)
	if len(fields) <= depRelField {
		return ""
	}
	return fields[depRelField]
}
