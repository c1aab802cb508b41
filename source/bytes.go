package source

import (
	"bytes"
	"io"
)

// Bytes serves a corpus held in memory. Each Open returns an independent
// reader over the same backing slice; the slice must not be mutated while
// passes are in flight.
type Bytes struct {
	data []byte
}

// NewBytes creates a Bytes source over data.
func NewBytes(data []byte) *Bytes {
	return &Bytes{data: data}
}

// Open opens a fresh stream over the in-memory corpus.
func (b *Bytes) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b.data)), nil
}
