// Package model defines the value types shared by the corpus codecs.
//
//   - Header: corpus shape (documents, terms, non-zero count)
//   - Document: one sparse row, identified by its document id
//   - Entry: a single (term id, weight) pair
//
// All three are plain values with no back-reference to the stream they were
// decoded from; callers own them outright.
package model
