package codec

import (
	"io"

	"github.com/hupe1980/mmcorpus/model"
)

// Columnar stores a record's term ids as one contiguous block followed by
// its weights as a second contiguous block, so a decode is two bulk reads
// of homogeneous primitives instead of per-entry field parsing. This is the
// layout optimized for maximum decode throughput.
type Columnar struct{}

// Name returns the stable strategy name.
func (Columnar) Name() string { return "columnar" }

// DecodeDocument reads one columnar record from the current stream position.
func (Columnar) DecodeDocument(r io.Reader, transposed bool) (model.Document, error) {
	docID, docLen, err := readSubHeader(r)
	if err != nil {
		return model.Document{}, err
	}

	termIDs := make([]int32, docLen)
	if err := readInt32Slice(r, termIDs); err != nil {
		return model.Document{}, err
	}

	weights := make([]float32, docLen)
	if err := readFloat32Slice(r, weights); err != nil {
		return model.Document{}, err
	}

	entries := make([]model.Entry, docLen)
	for i := range entries {
		entries[i] = model.Entry{TermID: termIDs[i], Weight: weights[i]}
	}

	doc := model.Document{ID: docID, Entries: entries}
	if !transposed {
		doc = transpose(doc)
	}
	return doc, nil
}

// EncodeDocument writes one columnar record, preserving entry order.
func (Columnar) EncodeDocument(w io.Writer, doc model.Document) error {
	if err := writeSubHeader(w, doc.ID, int32(len(doc.Entries))); err != nil {
		return err
	}

	termIDs := make([]int32, len(doc.Entries))
	weights := make([]float32, len(doc.Entries))
	for i, e := range doc.Entries {
		termIDs[i] = e.TermID
		weights[i] = e.Weight
	}

	if err := writeInt32Slice(w, termIDs); err != nil {
		return err
	}
	return writeFloat32Slice(w, weights)
}
