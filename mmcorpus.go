package mmcorpus

import (
	"fmt"
	"iter"

	"github.com/hupe1980/mmcorpus/codec"
	"github.com/hupe1980/mmcorpus/model"
	"github.com/hupe1980/mmcorpus/source"
)

// Reader presents a corpus file as a restartable sequence of documents.
//
// The header is decoded once at construction and held immutably; every
// iteration pass opens a fresh stream from the source. A Reader must not be
// shared between concurrent passes — each pass owns the stream's read
// position — but independent Readers over the same file are safe.
type Reader struct {
	src        source.Source
	codec      codec.DocumentCodec
	header     model.Header
	transposed bool
}

// Open decodes the corpus header from src and returns a Reader bound to it.
func Open(src source.Source, opts ...Option) (*Reader, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	stream, err := src.Open()
	if err != nil {
		return nil, err
	}
	header, err := codec.ReadHeader(stream)
	cerr := stream.Close()
	if err != nil {
		return nil, fmt.Errorf("mmcorpus: reading header: %w", err)
	}
	if cerr != nil {
		return nil, cerr
	}

	return newReader(src, header, o), nil
}

// NewReader returns a Reader over src using header statistics the caller
// already knows. The source is not touched until the first pass.
func NewReader(src source.Source, header model.Header, opts ...Option) *Reader {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newReader(src, header, o)
}

func newReader(src source.Source, header model.Header, o options) *Reader {
	o.logger.Info("accepted corpus",
		"num_docs", header.NumDocs,
		"num_terms", header.NumTerms,
		"num_nnz", header.NumNNZ,
	)
	if o.observer != nil {
		o.observer(header)
	}
	return &Reader{
		src:        src,
		codec:      o.codec,
		header:     header,
		transposed: o.transposed,
	}
}

// Len returns the number of documents in the corpus.
func (r *Reader) Len() int {
	return int(r.header.NumDocs)
}

// Header returns the corpus header decoded at construction.
func (r *Reader) Header() model.Header {
	return r.header
}

// String returns a stable human-readable summary of the corpus shape.
func (r *Reader) String() string {
	return r.header.String()
}

// Iterate returns one full pass over the corpus. The pass opens its own
// stream, skips the header, and performs exactly Len() document decodes in
// file order; the header's count bounds iteration regardless of the
// records' own ids. On a decode failure the error is yielded once and the
// pass ends — no partial document is produced. Iterate may be called again
// at any time for a fresh, independent pass; it is not resumable mid-pass.
func (r *Reader) Iterate() iter.Seq2[model.Document, error] {
	return func(yield func(model.Document, error) bool) {
		stream, err := r.src.Open()
		if err != nil {
			yield(model.Document{}, err)
			return
		}
		defer stream.Close()

		if err := codec.SkipHeader(stream); err != nil {
			yield(model.Document{}, fmt.Errorf("mmcorpus: skipping header: %w", err))
			return
		}

		for i := int32(0); i < r.header.NumDocs; i++ {
			doc, err := r.codec.DecodeDocument(stream, r.transposed)
			if err != nil {
				yield(model.Document{}, fmt.Errorf("mmcorpus: decoding document %d of %d: %w", i, r.header.NumDocs, err))
				return
			}
			if !yield(doc, nil) {
				return
			}
		}
	}
}
