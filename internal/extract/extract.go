// Package extract turns uploaded documents into plain text for analysis.
package extract

import (
	"errors"
	"io"
)

// ErrEmptyDocument reports a document that parsed successfully but produced
// no non-whitespace text. It is distinct from a parse failure so the caller
// can surface the two conditions separately.
var ErrEmptyDocument = errors.New("document contains no readable text")

// ParseError reports a document that could not be parsed at all.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "could not read document: " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// Extractor produces the concatenated per-page text of a document, in page
// order. Pages whose text cannot be extracted contribute empty text; only a
// whole-document parse failure is an error.
type Extractor interface {
	Text(r io.ReaderAt, size int64) (string, error)
}
