package ellipsis

import (
	"fmt"
	"strings"

	"github.com/revelaction/ellips/conllu"
	sent "github.com/revelaction/ellips/sentence"
)

// Class is the outcome of the classification of a sentence
type Class string

const (
	Plain      Class = "plain"
	Elliptical Class = "elliptical"
	Copula     Class = "copula"
)

func Classes() []Class {
	return []Class{Plain, Elliptical, Copula}
}

// Exclusions holds the substring lists loaded by the caller. Matching is
// literal containment over the whole block text.
type Exclusions struct {
	// Sentences identify sentences (usually by sent_id) that are counted but
	// never rewritten.
	Sentences []string

	// Endings identify blocks that are passed through without parsing.
	Endings []string
}

func containsAny(text string, list []string) bool {
	for _, s := range list {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// Excluded reports whether the sentence text must not be rewritten.
func (e Exclusions) Excluded(text string) bool {
	return containsAny(text, e.Sentences)
}

// HasEnding reports whether the block must bypass classification.
func (e Exclusions) HasEnding(text string) bool {
	return containsAny(text, e.Endings)
}

// Result is the classification of one sentence block.
type Result struct {
	Class Class

	// Sentence is nil if the block was not parsed
	Sentence *sent.Sentence

	// Text is the block to write out, with orphan rewrites applied
	Text string

	// Skipped is true when the block matched an ending
	Skipped bool

	// Excluded is true when a flagged sentence was on the exclusion list
	Excluded bool

	// Orphans is the number of rewritten rows
	Orphans int
}

// Classifier applies the ellipsis rules to sentences.
type Classifier struct {
	Exclusions Exclusions

	rules Rules
	sets  ruleSets
}

func NewClassifier(r Rules, ex Exclusions) *Classifier {
	return &Classifier{
		Exclusions: ex,
		rules:      r,
		sets:       r.sets(),
	}
}

// ProcessBlock classifies a raw block. Blocks with an excluded ending are
// returned untouched and unparsed. On error the returned Result carries the
// original block text so the caller can still write it out.
func (c *Classifier) ProcessBlock(block string) (Result, error) {
	if c.Exclusions.HasEnding(block) {
		return Result{Class: Plain, Text: block, Skipped: true}, nil
	}

	s, err := conllu.Parse(block)
	if err != nil {
		return Result{Class: Plain, Text: block}, err
	}

	res, err := c.Classify(s)
	if err != nil {
		return Result{Class: Plain, Sentence: s, Text: block}, err
	}

	return res, nil
}

// Classify walks the tokens of s in order. Verbs are examined for verb
// ellipsis and their flagged conjuncts annotated; the first non verb token
// with an elided copula makes the sentence a Copula one and ends the walk.
func (c *Classifier) Classify(s *sent.Sentence) (Result, error) {
	res := Result{Class: Plain, Sentence: s}
	elliptical := false
	excluded := c.Exclusions.Excluded(s.Text())

	for _, word := range s.Tokens {
		if word.XPos == c.rules.VerbTag {
			if word.Lemma == c.rules.CopulaLemma || c.sets.skippedVerbRels.Contains(word.Dep) {
				continue
			}

			found, err := c.verbEllipsis(s, word, excluded, &res)
			if err != nil {
				return res, fmt.Errorf("verb %s in sentence %q: %w", word.Id, s.Id, err)
			}
			elliptical = elliptical || found
			continue
		}

		if c.HasElidedCopula(word, s) {
			res.Class = Copula
			res.Text = s.Text()
			return res, nil
		}
	}

	if elliptical {
		res.Class = Elliptical
	}
	res.Text = s.Text()
	return res, nil
}

// verbEllipsis applies the main rule to the dependents of verb and
// annotates the flagged conjuncts unless the sentence is excluded.
// Ambiguous coordinations are skipped.
func (c *Classifier) verbEllipsis(s *sent.Sentence, verb sent.Token, excluded bool, res *Result) (bool, error) {
	tags, markers := c.CoordinationSignature(verb, s)
	if tags > 1 || markers > 1 {
		return false, nil
	}

	var (
		found      bool
		adjectives int
		quotes     int
	)
	for _, dep := range s.Dependents(verb) {
		if dep.Dep == conjRel && dep.XPos == c.rules.AdjectiveTag {
			adjectives++
		}
		if verb.Dep != rootRel && dep.Form == c.rules.QuoteForm {
			quotes++
		}

		if c.IsFalsePositive(dep, verb) {
			continue
		}

		hasCopula, elliptical, verbIds := c.ClassifyConjunct(dep, s)
		if hasCopula || !elliptical || adjectives >= 2 || quotes == 2 {
			continue
		}

		found = true
		if excluded {
			res.Excluded = true
			continue
		}

		for _, id := range verbIds {
			n, err := c.Annotate(s, id, dep)
			res.Orphans += n
			if err != nil {
				return found, err
			}
		}
	}

	return found, nil
}
