package codec

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"
)

var (
	// ErrUnsupportedArchitecture is returned when running on an unsupported
	// CPU architecture.
	ErrUnsupportedArchitecture = errors.New("codec: unsupported architecture, only amd64 and arm64 are supported")

	// ErrBigEndian is returned on big-endian systems, where the raw slice
	// casts would not match the wire byte order.
	ErrBigEndian = errors.New("codec: big-endian systems are not supported")

	// ErrUnalignedAccess is returned when a slice is not aligned for raw
	// byte reinterpretation.
	ErrUnalignedAccess = errors.New("codec: unaligned memory access detected")
)

func init() {
	if err := validatePlatform(); err != nil {
		panic(fmt.Sprintf("mmcorpus/codec: %v", err))
	}
}

func validatePlatform() error {
	arch := runtime.GOARCH
	if arch != "amd64" && arch != "arm64" {
		return fmt.Errorf("%w: %s", ErrUnsupportedArchitecture, arch)
	}
	if !isLittleEndian() {
		return ErrBigEndian
	}
	return nil
}

func isLittleEndian() bool {
	var test uint16 = 0x0001
	firstByte := *(*byte)(unsafe.Pointer(&test))
	return firstByte == 1
}

func validateInt32SliceAlignment(slice []int32) error {
	if len(slice) == 0 {
		return nil
	}
	ptr := uintptr(unsafe.Pointer(&slice[0]))
	if ptr%4 != 0 {
		return fmt.Errorf("%w: int32 slice at address 0x%x", ErrUnalignedAccess, ptr)
	}
	return nil
}

func validateFloat32SliceAlignment(slice []float32) error {
	if len(slice) == 0 {
		return nil
	}
	ptr := uintptr(unsafe.Pointer(&slice[0]))
	if ptr%4 != 0 {
		return fmt.Errorf("%w: float32 slice at address 0x%x", ErrUnalignedAccess, ptr)
	}
	return nil
}
