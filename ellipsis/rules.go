package ellipsis

import (
	"github.com/emirpasic/gods/sets/hashset"
)

const (
	conjRel = "conj"
	ccRel   = "cc"
	copRel  = "cop"
	rootRel = "root"
	nmodRel = "nmod"
	numRel  = "nummod"

	caseFeat     = "Case"
	verbFormFeat = "VerbForm"
)

// Rules holds the tags, lemmas and label lists the classifier works with.
// The defaults target the Estonian UD treebank.
type Rules struct {
	// CopulaLemma is the lemma of the copular verb
	CopulaLemma  string
	VerbTag      string
	AdjectiveTag string
	QuoteForm    string

	// CopulaRels are the labels of copula family dependents
	CopulaRels []string

	// CopulaSubjectRels mark a copula subject (clausal or nominal)
	CopulaSubjectRels []string

	// IgnoredDependents do not signal an orphaned dependent of a conjunct
	IgnoredDependents []string

	// IgnoredOrphans are never rewritten to orphan labels
	IgnoredOrphans []string

	// SkippedVerbRels are the relations of verbs never examined for ellipsis
	SkippedVerbRels []string

	// FalsePositiveCases and FalsePositiveVerbForms together mark a
	// converb/supine adjunct.
	FalsePositiveCases     []string
	FalsePositiveVerbForms []string

	// KeptNmodCases are the cases of nmod dependents that stay untouched
	KeptNmodCases []string

	// NumPhraseLemmas are conjunct lemmas whose nummod dependents stay untouched
	NumPhraseLemmas []string
}

// DefaultRules returns the rule set for the Estonian UD treebank.
func DefaultRules() Rules {
	return Rules{
		CopulaLemma:            "olema",
		VerbTag:                "V",
		AdjectiveTag:           "A",
		QuoteForm:              `"`,
		CopulaRels:             []string{"cop", "nsubj:cop", "csubj:cop"},
		CopulaSubjectRels:      []string{"nsubj:cop", "csubj:cop"},
		IgnoredDependents:      []string{"punct", "cc", "amod", "advcl"},
		IgnoredOrphans:         []string{"cc", "punct", "amod", "case", "appos", "flat", "acl:relcl", "compound", "advcl", "mark", "ccomp", "det", "conj", "parataxis", "orphan"},
		SkippedVerbRels:        []string{"xcomp", "csubj"},
		FalsePositiveCases:     []string{"Ela", "Ine", "All"},
		FalsePositiveVerbForms: []string{"Conv", "Sup"},
		KeptNmodCases:          []string{"Gen", "Ela", "Nom"},
		NumPhraseLemmas:        []string{"kroon", "aasta", "kord", "km", "meeter"},
	}
}

// ruleSets are the label lists of Rules as sets
type ruleSets struct {
	copulaRels        *hashset.Set
	copulaSubjectRels *hashset.Set
	ignoredDependents *hashset.Set
	ignoredOrphans    *hashset.Set
	skippedVerbRels   *hashset.Set
	fpCases           *hashset.Set
	fpVerbForms       *hashset.Set
	keptNmodCases     *hashset.Set
	numPhraseLemmas   *hashset.Set
}

func newSet(values []string) *hashset.Set {
	s := hashset.New()
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (r Rules) sets() ruleSets {
	return ruleSets{
		copulaRels:        newSet(r.CopulaRels),
		copulaSubjectRels: newSet(r.CopulaSubjectRels),
		ignoredDependents: newSet(r.IgnoredDependents),
		ignoredOrphans:    newSet(r.IgnoredOrphans),
		skippedVerbRels:   newSet(r.SkippedVerbRels),
		fpCases:           newSet(r.FalsePositiveCases),
		fpVerbForms:       newSet(r.FalsePositiveVerbForms),
		keptNmodCases:     newSet(r.KeptNmodCases),
		numPhraseLemmas:   newSet(r.NumPhraseLemmas),
	}
}
