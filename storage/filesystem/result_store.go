package filesystem

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/revelaction/ellips/ellipsis"
	"github.com/revelaction/ellips/file"
	"github.com/revelaction/ellips/storage"
)

const (
	EllipticalFile  = "elliptical_sentences.conllu"
	CopulaFile      = "copula_sentences.conllu"
	CorpusFileSufix = "_with_orphans.conllu"

	blockTerminator = "\n\n"
)

// ResultStore writes CoNLL-U streams to a results directory: the elliptical
// sentences, the copula elliptical sentences, and for each input file the
// whole corpus with the orphan rewrites applied.
type ResultStore struct {
	dir string

	elliptical *output
	copula     *output

	// corpus outputs by output path; inputs sharing a basename append to
	// the same output
	corpus map[string]*output
}

var _ storage.ResultWriter = (*ResultStore)(nil)

type output struct {
	f *os.File
	w *bufio.Writer
}

func create(path string) (*output, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &output{f: f, w: bufio.NewWriter(f)}, nil
}

func (o *output) write(text string) error {
	_, err := o.w.WriteString(text + blockTerminator)
	return err
}

func (o *output) close() error {
	if err := o.w.Flush(); err != nil {
		o.f.Close()
		return err
	}
	return o.f.Close()
}

// NewResultStore creates the results directory if needed and the elliptical
// and copula output files.
func NewResultStore(dir string) (*ResultStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	el, err := create(filepath.Join(dir, EllipticalFile))
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	cop, err := create(filepath.Join(dir, CopulaFile))
	if err != nil {
		el.close()
		return nil, fmt.Errorf("IO error: %w", err)
	}

	return &ResultStore{
		dir:        dir,
		elliptical: el,
		copula:     cop,
		corpus:     map[string]*output{},
	}, nil
}

// CorpusPath returns the path of the whole corpus output of an input file.
func (s *ResultStore) CorpusPath(input string) string {
	name := strings.TrimSuffix(filepath.Base(input), file.CorpusExt)
	return filepath.Join(s.dir, name+CorpusFileSufix)
}

func (s *ResultStore) Write(input string, pos int, res ellipsis.Result) error {
	path := s.CorpusPath(input)
	o, ok := s.corpus[path]
	if !ok {
		var err error
		o, err = create(path)
		if err != nil {
			return fmt.Errorf("IO error: %w", err)
		}
		s.corpus[path] = o
	}

	switch res.Class {
	case ellipsis.Elliptical:
		if err := s.elliptical.write(res.Text); err != nil {
			return err
		}
	case ellipsis.Copula:
		if err := s.copula.write(res.Text); err != nil {
			return err
		}
	}

	return o.write(res.Text)
}

func (s *ResultStore) Close() error {
	errs := []error{s.elliptical.close(), s.copula.close()}
	for _, o := range s.corpus {
		errs = append(errs, o.close())
	}
	return errors.Join(errs...)
}
