package generator

import (
	"fmt"

	"github.com/xll-gen/bin2c/internal/config"
)

// WriteHeader generates the declaration file for the embedded array.
// It declares the array as extern and defines <name>_size with the same
// value as the declared array size.
//
// Parameters:
//   - path: The header file to create or truncate.
//   - name: The array symbol.
//   - size: The raw size of the embedded data in bytes.
//   - ct: The content type, which selects the element type and size padding.
//
// Returns:
//   - error: An error wrapping errs.ErrIO or errs.ErrWrite if the file cannot be written.
func WriteHeader(path, name string, size int, ct config.ContentType) error {
	data := fileData{
		ElementType: LookupElementType(ct),
		Name:        name,
		Size:        HeaderSize(size, ct),
		SizeType:    SizeType,
	}

	if err := executeTemplate("header.h.tmpl", path, data, nil); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}
