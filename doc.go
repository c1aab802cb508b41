// Package mmcorpus reads and writes sparse document-term matrices in a
// compact binary form, one document at a time, so corpora larger than
// available memory can be streamed through.
//
// # File format
//
// A corpus file is exactly a fixed header followed by one record per
// document, nothing else — no magic number, no version tag, no trailer:
//
//	Header:      int32 num_docs, int32 num_terms, int32 num_nnz
//	Per record:  int32 doc_id, int32 doc_length, then the entries in one of
//	             two layouts (chosen per file, not recorded in the file):
//	  columnar:     int32 term_id[doc_length], float32 weight[doc_length]
//	  interleaved:  (int32 term_id, float32 weight) x doc_length
//
// All fields are 4-byte little-endian. Reader and writer must agree on the
// entry layout out of band; see the codec package.
//
// # Reading
//
//	r, err := mmcorpus.Open(source.NewFile("nytimes.binary.mm"))
//	if err != nil { ... }
//	for doc, err := range r.Iterate() {
//	    if err != nil { ... }
//	    // doc is caller-owned
//	}
//
// Iterate may be called any number of times; each call opens a fresh stream
// and yields exactly r.Len() documents. A single pass owns the stream's
// read position, so concurrent passes need one Reader each.
//
// # Writing
//
//	header := model.Header{NumDocs: 2, NumTerms: 3, NumNNZ: 3}
//	err := mmcorpus.Save("corpus.mm", header, slices.Values(docs))
//
// The caller supplies the header statistics up front; the writer streams
// records and cannot fix the header afterwards, so a document count that
// does not match NumDocs is reported as ErrInconsistentStats.
package mmcorpus
