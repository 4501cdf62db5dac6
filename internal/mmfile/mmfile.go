// Package mmfile provides platform-specific helpers for reading catalog files
// through a read-only memory mapping.
package mmfile

import "errors"

// MaxMapSize bounds the files Map accepts. Bit spec catalogs are small text
// files; anything larger is almost certainly the wrong input.
const MaxMapSize = 64 << 20

var (
	// ErrTooLarge indicates the file exceeds MaxMapSize.
	ErrTooLarge = errors.New("mmfile: file too large")
	// ErrNotRegular indicates the path is a directory, device or pipe.
	ErrNotRegular = errors.New("mmfile: not a regular file")
)

// ReadFile maps path, copies its contents and releases the mapping.
func ReadFile(path string) ([]byte, error) {
	data, cleanup, err := Map(path)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	copy(out, data)
	if err := cleanup(); err != nil {
		return nil, err
	}
	return out, nil
}
