//go:build windows

package mmap

import "os"

// Windows fallback: read the file into memory instead of mapping it. The
// Mapping contract (stable Bytes until Close) holds either way; only the
// zero-copy property is lost.
func osMap(f *os.File, size int) ([]byte, func([]byte) error, error) {
	data, err := os.ReadFile(f.Name())
	if err != nil {
		return nil, nil, err
	}
	return data, func([]byte) error { return nil }, nil
}
