package codec

import (
	"io"
	"unsafe"
)

// Bulk slice I/O. Reading doc_length homogeneous primitives in one read is
// what makes the columnar layout fast; the unsafe casts reinterpret the
// slice backing array as bytes without copying. safety.go verifies at init
// that the platform is little-endian, so the reinterpretation matches the
// wire byte order.

// readInt32Slice fills dst with len(dst) int32 values in one read.
func readInt32Slice(r io.Reader, dst []int32) error {
	if len(dst) == 0 {
		return nil
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(&dst[0])), len(dst)*4)
	return readFull(r, b)
}

// readFloat32Slice fills dst with len(dst) float32 values in one read.
func readFloat32Slice(r io.Reader, dst []float32) error {
	if len(dst) == 0 {
		return nil
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(&dst[0])), len(dst)*4)
	return readFull(r, b)
}

// writeInt32Slice writes src as raw bytes in one write.
func writeInt32Slice(w io.Writer, src []int32) error {
	if len(src) == 0 {
		return nil
	}
	if err := validateInt32SliceAlignment(src); err != nil {
		return err
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(&src[0])), len(src)*4)
	_, err := w.Write(b)
	return err
}

// writeFloat32Slice writes src as raw bytes in one write.
func writeFloat32Slice(w io.Writer, src []float32) error {
	if len(src) == 0 {
		return nil
	}
	if err := validateFloat32SliceAlignment(src); err != nil {
		return err
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(&src[0])), len(src)*4)
	_, err := w.Write(b)
	return err
}
