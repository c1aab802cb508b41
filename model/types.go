package model

import "fmt"

// Entry is one non-zero cell of a term-document matrix: a term id and the
// weight the document assigns to that term.
type Entry struct {
	TermID int32
	Weight float32
}

// Document is one matrix row in bag-of-words form: its non-zero entries
// only, in the order they were written. The codec preserves entry order but
// does not require or enforce sorted term ids.
type Document struct {
	ID      int32
	Entries []Entry
}

// Len returns the number of non-zero entries.
func (d Document) Len() int { return len(d.Entries) }

// Header describes the shape of a corpus: how many documents and distinct
// terms it holds and how many non-zero entries it stores in total. NumNNZ is
// advisory metadata; readers trust NumDocs to bound iteration and nothing
// else.
type Header struct {
	NumDocs  int32
	NumTerms int32
	NumNNZ   int32
}

// String returns the corpus shape in a stable human-readable form.
func (h Header) String() string {
	return fmt.Sprintf("%d documents, %d features, %d non-zero entries", h.NumDocs, h.NumTerms, h.NumNNZ)
}
