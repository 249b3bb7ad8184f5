// Package source loads the file to be embedded.
package source

import (
	"fmt"
	"io"
	"os"

	"github.com/xll-gen/bin2c/internal/errs"
)

// Buffer holds the complete contents of an input file.
type Buffer struct {
	// Bytes is the file content followed by one NUL sentinel.
	Bytes []byte
	// Size is the exact number of bytes read from the file. The sentinel is
	// not counted.
	Size int
}

// Content returns the file content without the sentinel.
func (b *Buffer) Content() []byte {
	return b.Bytes[:b.Size]
}

// Load reads the regular file at path fully into memory.
//
// Returns:
//   - *Buffer: The file content with a trailing NUL sentinel.
//   - error: An error wrapping errs.ErrIO if the file cannot be opened, is not
//     a regular file, or cannot be read completely.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not read '%s': %w: %w", path, errs.ErrIO, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("could not stat '%s': %w: %w", path, errs.ErrIO, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("could not read '%s': %w: not a regular file", path, errs.ErrIO)
	}

	size := int(info.Size())
	data := make([]byte, size+1)
	if _, err := io.ReadFull(f, data[:size]); err != nil {
		return nil, fmt.Errorf("could not read '%s': %w: %w", path, errs.ErrIO, err)
	}
	data[size] = 0

	return &Buffer{Bytes: data, Size: size}, nil
}
