//go:build !unix

package mmfile

import (
	"fmt"
	"os"
)

// Map reads the entire file when mmap is not available.
func Map(path string) ([]byte, func() error, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	if !info.Mode().IsRegular() {
		return nil, func() error { return nil }, fmt.Errorf("%w: %s", ErrNotRegular, path)
	}
	if info.Size() > MaxMapSize {
		return nil, func() error { return nil }, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
