// Package ellipsis detects verb and copula ellipsis in dependency parsed
// sentences and marks the dependents of elided verbs as orphans.
package ellipsis

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/sets/linkedhashset"

	sent "github.com/revelaction/ellips/sentence"
)

// CoordinationSignature returns the number of distinct POS tags of the non
// verb conjuncts of verb, and the number of coordinating conjunctions
// attached to those conjuncts.
func (c *Classifier) CoordinationSignature(verb sent.Token, s *sent.Sentence) (int, int) {
	tags := hashset.New()
	markers := 0
	for _, conj := range s.Dependents(verb) {
		if conj.Dep != conjRel || conj.XPos == c.rules.VerbTag {
			continue
		}

		tags.Add(conj.XPos)
		for _, d := range s.Dependents(conj) {
			if d.Dep == ccRel {
				markers++
			}
		}
	}

	return tags.Size(), markers
}

// IsFalsePositive reports whether candidate is a converb or supine adjunct of
// governor rather than a conjunct left by an elided verb.
func (c *Classifier) IsFalsePositive(candidate, governor sent.Token) bool {
	return c.sets.fpCases.Contains(candidate.Feats.Get(caseFeat)) &&
		c.sets.fpVerbForms.Contains(governor.Feats.Get(verbFormFeat))
}

// ClassifyConjunct applies the main ellipsis rule to a dependent of a verb.
// Only non verbal conjuncts can be elliptical. A copula family dependent
// stops the search; otherwise every dependent outside the ignored labels
// flags the conjunct and its id is returned in verbIds.
func (c *Classifier) ClassifyConjunct(dep sent.Token, s *sent.Sentence) (hasCopula bool, elliptical bool, verbIds []string) {
	if dep.Dep != conjRel || dep.XPos == c.rules.VerbTag {
		return false, false, nil
	}

	ids := linkedhashset.New()
	for _, d := range s.Dependents(dep) {
		if c.sets.copulaRels.Contains(d.Dep) {
			hasCopula = true
			break
		}

		if !c.sets.ignoredDependents.Contains(d.Dep) {
			elliptical = true
			ids.Add(dep.Id)
		}
	}

	for _, v := range ids.Values() {
		verbIds = append(verbIds, v.(string))
	}
	return hasCopula, elliptical, verbIds
}

// HasElidedCopula reports whether word heads a coordination where one
// conjunct has the copula and the other has a copula subject but no copula.
func (c *Classifier) HasElidedCopula(word sent.Token, s *sent.Sentence) bool {
	for _, olema := range s.Dependents(word) {
		if olema.Lemma != c.rules.CopulaLemma {
			continue
		}

		for _, conj := range s.Tokens {
			// any dependent of word is a candidate; dependents of the
			// copula must be conj with the POS of word.
			if !(conj.Head == word.Id ||
				conj.Head == olema.Id && conj.Dep == conjRel && conj.XPos == word.XPos) {
				continue
			}

			rels := hashset.New()
			for _, d := range s.Dependents(conj) {
				rels.Add(d.Dep)
			}

			if rels.Contains(copRel) {
				continue
			}

			for _, subj := range c.sets.copulaSubjectRels.Values() {
				if rels.Contains(subj) {
					return true
				}
			}
		}
	}

	return false
}

// Annotate marks as orphans the dependents of the flagged conjunct conj
// when verbId is its id. It returns the number of rewritten rows.
func (c *Classifier) Annotate(s *sent.Sentence, verbId string, conj sent.Token) (int, error) {
	if conj.Id != verbId {
		return 0, nil
	}

	n := 0
	for _, o := range s.Dependents(conj) {
		if c.sets.ignoredOrphans.Contains(o.Dep) {
			continue
		}

		if o.Dep == nmodRel && c.sets.keptNmodCases.Contains(o.Feats.Get(caseFeat)) {
			continue
		}

		if o.Dep == numRel && c.sets.numPhraseLemmas.Contains(conj.Lemma) {
			continue
		}

		if err := s.MarkOrphan(o.Id, o.Dep); err != nil {
			return n, err
		}
		n++
	}

	return n, nil
}
