package mmcorpus

import (
	"errors"

	"github.com/hupe1980/mmcorpus/codec"
)

// ErrTruncated is returned when a stream ends before a decode step has the
// bytes it needs. It is fatal to the current pass and never retried.
var ErrTruncated = codec.ErrTruncated

// ErrInconsistentStats is returned by the writer when the number of
// documents supplied does not match the header's NumDocs. The mismatch is
// detectable only after the records have been streamed, so it is reported,
// not corrected.
var ErrInconsistentStats = errors.New("mmcorpus: document count does not match header statistics")
