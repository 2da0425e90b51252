// Package conllu parses CoNLL-U sentence blocks into sentence.Sentence
// values. For a description of the format see
// https://universaldependencies.org/format.html
package conllu

import (
	"errors"
	"fmt"
	"strings"

	sent "github.com/revelaction/ellips/sentence"
)

const (
	FieldSeparator     = "\t"
	NumFields          = 10
	FeaturesSeparator  = "|"
	FeatureSeparator   = "="
	FeatureConcatDelim = ","

	// BlockSeparator separates two sentence blocks of a corpus
	BlockSeparator = "\n\n"

	commentPrefix = "#"
	sentIdPrefix  = "# sent_id"
)

// ErrMalformed is returned for a block that can not be parsed into a token
// tree.
var ErrMalformed = errors.New("malformed sentence block")

// SplitBlocks splits the contents of a corpus file into sentence blocks.
// Surrounding newlines are removed and empty blocks are dropped.
func SplitBlocks(data string) []string {
	data = strings.ReplaceAll(data, "\r\n", "\n")
	blocks := []string{}
	for _, b := range strings.Split(data, BlockSeparator) {
		b = strings.Trim(b, "\n")
		if strings.TrimSpace(b) == "" {
			continue
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// ParseString maps the CoNLL-U empty value "_" to the empty string.
func ParseString(value string) string {
	if value == "_" {
		return ""
	}
	return value
}

// ParseFeatures parses a FEATS column. Repeated feature names are
// concatenated with FeatureConcatDelim.
func ParseFeatures(featuresStr string) (sent.Features, error) {
	if featuresStr == "_" || featuresStr == "" {
		return nil, nil
	}

	featureList := strings.Split(featuresStr, FeaturesSeparator)
	features := make(sent.Features, len(featureList))
	for _, featureStr := range featureList {
		kv := strings.Split(featureStr, FeatureSeparator)
		if len(kv) != 2 || kv[0] == "" {
			return nil, fmt.Errorf("wrong number of fields for feature %q", featureStr)
		}

		if existing, ok := features[kv[0]]; ok {
			features[kv[0]] = existing + FeatureConcatDelim + kv[1]
		} else {
			features[kv[0]] = kv[1]
		}
	}
	return features, nil
}

// ParseRow parses the fields of one token row. line is the index of the row
// in its block.
func ParseRow(record []string, line int) (sent.Token, error) {
	var t sent.Token
	if len(record) != NumFields {
		return t, fmt.Errorf("expected %d fields, got %d", NumFields, len(record))
	}

	if record[0] == "" || record[0] == "_" {
		return t, errors.New("empty ID field")
	}

	feats, err := ParseFeatures(record[5])
	if err != nil {
		return t, fmt.Errorf("error parsing FEATS field (%s): %w", record[5], err)
	}

	t = sent.Token{
		Id:    record[0],
		Form:  record[1],
		Lemma: ParseString(record[2]),
		UPos:  ParseString(record[3]),
		XPos:  ParseString(record[4]),
		Feats: feats,
		Head:  ParseString(record[6]),
		Dep:   ParseString(record[7]),
		Line:  line,
	}
	return t, nil
}

// Parse parses a sentence block. Comment lines are kept verbatim in the
// sentence Lines; the "# sent_id" comment sets the sentence Id.
func Parse(block string) (*sent.Sentence, error) {
	lines := strings.Split(block, "\n")

	var (
		id     string
		tokens []sent.Token
	)
	for i, line := range lines {
		if strings.HasPrefix(line, commentPrefix) {
			if strings.HasPrefix(line, sentIdPrefix) {
				if _, v, ok := strings.Cut(line, FeatureSeparator); ok {
					id = strings.TrimSpace(v)
				}
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		t, err := ParseRow(strings.Split(line, FieldSeparator), i)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, i+1, err)
		}
		tokens = append(tokens, t)
	}

	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: no token rows", ErrMalformed)
	}

	return sent.New(id, lines, tokens), nil
}
