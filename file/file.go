package file

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/revelaction/ellips/conllu"
)

const CorpusExt = ".conllu"

// ReadCorpus reads a CoNLL-U file and splits it into sentence blocks.
func ReadCorpus(path string) ([]string, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	return conllu.SplitBlocks(string(f)), nil
}

// ReadList reads a file with one entry per line. Entries are trimmed and
// blank lines are skipped.
func ReadList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	list := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		entry := strings.TrimSpace(scanner.Text())
		if entry == "" {
			continue
		}
		list = append(list, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return list, nil
}
