package codec

import (
	"io"

	"github.com/hupe1980/mmcorpus/model"
)

// ReadHeader decodes the fixed corpus header from the current stream
// position, advancing it by HeaderSize bytes.
func ReadHeader(r io.Reader) (model.Header, error) {
	var buf [HeaderSize]byte
	if err := readFull(r, buf[:]); err != nil {
		return model.Header{}, err
	}
	return model.Header{
		NumDocs:  int32(byteOrder.Uint32(buf[0:4])),
		NumTerms: int32(byteOrder.Uint32(buf[4:8])),
		NumNNZ:   int32(byteOrder.Uint32(buf[8:12])),
	}, nil
}

// WriteHeader encodes the fixed corpus header: three int32 fields, no
// padding, no length prefix.
func WriteHeader(w io.Writer, h model.Header) error {
	var buf [HeaderSize]byte
	byteOrder.PutUint32(buf[0:4], uint32(h.NumDocs))
	byteOrder.PutUint32(buf[4:8], uint32(h.NumTerms))
	byteOrder.PutUint32(buf[8:12], uint32(h.NumNNZ))
	_, err := w.Write(buf[:])
	return err
}

// SkipHeader positions r past the header without materializing its fields.
// Used on iteration restart once the header values are already cached.
func SkipHeader(r io.Reader) error {
	var buf [HeaderSize]byte
	return readFull(r, buf[:])
}
