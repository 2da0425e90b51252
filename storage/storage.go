package storage

import (
	"errors"

	"github.com/revelaction/ellips/ellipsis"
)

// Record is a stored classification result
type Record struct {
	File     string
	Position int
	SentId   string
	Class    ellipsis.Class
	Orphans  int
	Text     string
}

// NewRecord builds the Record of the block at position pos of file.
func NewRecord(file string, pos int, res ellipsis.Result) Record {
	r := Record{
		File:     file,
		Position: pos,
		Class:    res.Class,
		Orphans:  res.Orphans,
		Text:     res.Text,
	}
	if res.Sentence != nil {
		r.SentId = res.Sentence.Id
	}
	return r
}

// ResultWriter defines write operations for classification results
type ResultWriter interface {
	// Write persists the result of the block at position pos of the input
	// file. Blocks are written in corpus order.
	Write(file string, pos int, res ellipsis.Result) error

	Close() error
}

// ResultReader defines read operations for classification results
type ResultReader interface {
	// List returns the stored records of the class, all records if class
	// is empty, in corpus order.
	List(class ellipsis.Class) ([]Record, error)
}

// ResultRepository combines read and write operations
type ResultRepository interface {
	ResultReader
	ResultWriter
}

type multiWriter struct {
	writers []ResultWriter
}

// MultiWriter duplicates its writes to all the provided writers.
func MultiWriter(writers ...ResultWriter) ResultWriter {
	return &multiWriter{writers: writers}
}

func (m *multiWriter) Write(file string, pos int, res ellipsis.Result) error {
	for _, w := range m.writers {
		if err := w.Write(file, pos, res); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiWriter) Close() error {
	var errs []error
	for _, w := range m.writers {
		if err := w.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
