package source

import (
	"bytes"
	"io"

	"github.com/hupe1980/mmcorpus/internal/mmap"
)

// Mmap maps the corpus file into memory once and serves every pass from the
// mapping, so repeated iteration costs no read syscalls. Close releases the
// mapping; streams handed out by Open must not outlive it.
type Mmap struct {
	m *mmap.Mapping
}

// OpenMmap maps the corpus file at path.
func OpenMmap(path string) (*Mmap, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	return &Mmap{m: m}, nil
}

// Open opens a fresh stream over the mapped corpus.
func (s *Mmap) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.m.Bytes())), nil
}

// Close unmaps the file.
func (s *Mmap) Close() error {
	return s.m.Close()
}
