// Package source provides the byte-stream inputs a corpus reader pulls
// from.
//
// A Source opens one sequential pass at a time; every Open returns an
// independent stream positioned at the start of the corpus, which is what
// makes reader iteration restartable. Sources only promise sequential read
// semantics — compression wrappers qualify, random access is never needed.
//
// # Built-in Implementations
//
//   - File: local file system, with transparent .gz/.lz4 decompression
//   - Bytes: in-memory corpus, for tests and benchmarks
//   - Mmap: memory-mapped local file, the cheapest path for repeated passes
package source

import "io"

// Source opens a corpus for one sequential pass.
type Source interface {
	// Open returns a fresh stream positioned at the start of the corpus.
	// The caller owns the stream and must close it.
	Open() (io.ReadCloser, error)
}

// stream pairs a reader with the closers behind it, innermost first.
type stream struct {
	io.Reader
	closers []io.Closer
}

func (s *stream) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
