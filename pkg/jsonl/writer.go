// Package jsonl writes the final corpus: one JSON object per line, the
// field order fixed by the Record struct, absent optional fields
// serialized as null.
package jsonl

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/coolbeans/statuta/pkg/corpus"
)

// Writer appends corpus records to an output stream. It is not
// goroutine-safe; when documents are converted in parallel, the caller
// keeps a single writing goroutine and merges per-document buffers.
type Writer struct {
	w     io.Writer
	count int
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write serializes one record followed by a newline.
func (w *Writer) Write(rec corpus.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling record %s: %w", rec.Title, err)
	}
	if _, err := w.w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing record %s: %w", rec.Title, err)
	}
	w.count++
	return nil
}

// WriteAll serializes records in order, stopping at the first failure.
func (w *Writer) WriteAll(records []corpus.Record) error {
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of records written so far.
func (w *Writer) Count() int {
	return w.count
}
