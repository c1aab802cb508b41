package mmcorpus

import (
	"github.com/hupe1980/mmcorpus/codec"
	"github.com/hupe1980/mmcorpus/model"
)

type options struct {
	codec         codec.DocumentCodec
	transposed    bool
	logger        *Logger
	observer      func(model.Header)
	positionalIDs bool
}

func defaultOptions() options {
	return options{
		codec:      codec.Default,
		transposed: true,
		logger:     NewLogger(nil),
	}
}

// Option configures Reader and Writer behavior.
type Option func(*options)

// WithCodec selects the document codec strategy. Reader and writer must use
// the same strategy for a given file; the layout is not recorded in the
// file. If nil is passed, codec.Default is used.
func WithCodec(c codec.DocumentCodec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithTransposed sets the read-time axis interpretation. When true (the
// default), records hold (doc_id, term_id, weight); when false the file is
// column-major and the two id roles are swapped after decode.
func WithTransposed(transposed bool) Option {
	return func(o *options) {
		o.transposed = transposed
	}
}

// WithLogger configures the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithStatsObserver registers a callback invoked once with the accepted
// corpus header when a Reader is constructed. Purely an observability hook;
// it does not participate in decoding.
func WithStatsObserver(fn func(model.Header)) Option {
	return func(o *options) {
		o.observer = fn
	}
}

// WithPositionalIDs makes the writer overwrite each document's id with its
// 0-based position in the input sequence, for inputs that do not carry
// explicit ids.
func WithPositionalIDs() Option {
	return func(o *options) {
		o.positionalIDs = true
	}
}
