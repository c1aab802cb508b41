package mmcorpus

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"

	"github.com/hupe1980/mmcorpus/codec"
	"github.com/hupe1980/mmcorpus/model"
)

// Write serializes a corpus to w: the header first, then one record per
// document in input order using the configured codec strategy. The header
// statistics are the caller's responsibility; if the sequence yields a
// different number of documents than header.NumDocs declares, the records
// already written stay written and ErrInconsistentStats is returned.
func Write(w io.Writer, header model.Header, docs iter.Seq[model.Document], opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	o.logger.Info("storing corpus",
		"num_docs", header.NumDocs,
		"num_terms", header.NumTerms,
		"num_nnz", header.NumNNZ,
		"codec", o.codec.Name(),
	)

	if err := codec.WriteHeader(w, header); err != nil {
		return fmt.Errorf("mmcorpus: writing header: %w", err)
	}

	var written int32
	for doc := range docs {
		if o.positionalIDs {
			doc.ID = written
		}
		if err := o.codec.EncodeDocument(w, doc); err != nil {
			return fmt.Errorf("mmcorpus: encoding document %d: %w", written, err)
		}
		written++
	}

	if written != header.NumDocs {
		return fmt.Errorf("%w: header declares %d documents, sequence yielded %d", ErrInconsistentStats, header.NumDocs, written)
	}
	return nil
}

// Save writes the corpus to path atomically: the bytes go to a temp file in
// the destination directory and replace path only after a successful flush
// and sync, so an error never leaves a half-written file under the target
// name.
func Save(path string, header model.Header, docs iter.Seq[model.Document], opts ...Option) error {
	return saveToFile(path, func(w io.Writer) error {
		return Write(w, header, docs, opts...)
	})
}

// saveToFile runs writeFunc against a buffered temp file and renames it
// over filename on success. The temp file lives in the same directory so
// the rename is atomic.
func saveToFile(filename string, writeFunc func(io.Writer) error) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	_ = tmp.Chmod(0644)

	buf := bufio.NewWriterSize(tmp, 256*1024)
	if err := writeFunc(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return err
	}

	// Best-effort: fsync the directory so the rename is durable on POSIX.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	// Success: prevent deferred cleanup from removing the final file.
	tmpName = ""
	return nil
}
