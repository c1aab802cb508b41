package codec

import (
	"io"
	"math"

	"github.com/hupe1980/mmcorpus/model"
)

// Interleaved stores each entry's term id and weight adjacent to each
// other, repeated per entry. A decode reads the whole entry block in a
// single read and parses the pairs in place.
type Interleaved struct{}

// Name returns the stable strategy name.
func (Interleaved) Name() string { return "interleaved" }

// DecodeDocument reads one interleaved record from the current stream
// position.
func (Interleaved) DecodeDocument(r io.Reader, transposed bool) (model.Document, error) {
	docID, docLen, err := readSubHeader(r)
	if err != nil {
		return model.Document{}, err
	}

	buf := make([]byte, int(docLen)*EntrySize)
	if err := readFull(r, buf); err != nil {
		return model.Document{}, err
	}

	entries := make([]model.Entry, docLen)
	for i := range entries {
		off := i * EntrySize
		entries[i] = model.Entry{
			TermID: int32(byteOrder.Uint32(buf[off : off+4])),
			Weight: math.Float32frombits(byteOrder.Uint32(buf[off+4 : off+8])),
		}
	}

	doc := model.Document{ID: docID, Entries: entries}
	if !transposed {
		doc = transpose(doc)
	}
	return doc, nil
}

// EncodeDocument writes one interleaved record, preserving entry order.
func (Interleaved) EncodeDocument(w io.Writer, doc model.Document) error {
	if err := writeSubHeader(w, doc.ID, int32(len(doc.Entries))); err != nil {
		return err
	}

	buf := make([]byte, len(doc.Entries)*EntrySize)
	for i, e := range doc.Entries {
		off := i * EntrySize
		byteOrder.PutUint32(buf[off:off+4], uint32(e.TermID))
		byteOrder.PutUint32(buf[off+4:off+8], math.Float32bits(e.Weight))
	}

	_, err := w.Write(buf)
	return err
}

// InterleavedScan decodes the same byte layout as Interleaved one pair at a
// time from a fixed scratch buffer. Semantically interchangeable with
// Interleaved; it exists so the strategy benchmark can measure the cost of
// per-entry decoding against the bulk read.
type InterleavedScan struct{}

// Name returns the stable strategy name.
func (InterleavedScan) Name() string { return "interleaved-scan" }

// DecodeDocument reads one interleaved record pair by pair.
func (InterleavedScan) DecodeDocument(r io.Reader, transposed bool) (model.Document, error) {
	docID, docLen, err := readSubHeader(r)
	if err != nil {
		return model.Document{}, err
	}

	entries := make([]model.Entry, docLen)
	var buf [EntrySize]byte
	for i := range entries {
		if err := readFull(r, buf[:]); err != nil {
			return model.Document{}, err
		}
		entries[i] = model.Entry{
			TermID: int32(byteOrder.Uint32(buf[0:4])),
			Weight: math.Float32frombits(byteOrder.Uint32(buf[4:8])),
		}
	}

	doc := model.Document{ID: docID, Entries: entries}
	if !transposed {
		doc = transpose(doc)
	}
	return doc, nil
}

// EncodeDocument writes the record in the interleaved layout; the bytes are
// identical to those produced by Interleaved.
func (InterleavedScan) EncodeDocument(w io.Writer, doc model.Document) error {
	return Interleaved{}.EncodeDocument(w, doc)
}
