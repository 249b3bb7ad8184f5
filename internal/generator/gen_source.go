package generator

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/xll-gen/bin2c/internal/config"
	"github.com/xll-gen/bin2c/internal/errs"
	"github.com/xll-gen/bin2c/internal/literal"
	"github.com/xll-gen/bin2c/internal/source"
)

// literalIndent prefixes every line of the array initializer.
const literalIndent = "    "

// WriteSource generates the definition file containing the array initializer.
// The declared size is always the raw size plus one for the trailing \0.
// On failure the partially written file is removed.
//
// Returns:
//   - error: An error wrapping errs.ErrIO if the file cannot be created or
//     closed, or errs.ErrWrite if writing the content fails.
func WriteSource(path, name string, buf *source.Buffer, ct config.ContentType) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write source: could not create %s: %w: %w", path, errs.ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("write source: could not close %s: %w: %w", path, errs.ErrIO, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	w := bufio.NewWriter(f)
	if err := renderSource(w, name, buf, ct); err != nil {
		return fmt.Errorf("write source %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write source %s: %w: %w", path, errs.ErrWrite, err)
	}
	return nil
}

// renderSource writes the complete definition to w.
func renderSource(w io.Writer, name string, buf *source.Buffer, ct config.ContentType) error {
	data := fileData{
		ElementType: LookupElementType(ct),
		Name:        name,
		Size:        SourceSize(buf.Size),
	}
	if err := renderTemplate(w, "source.c.tmpl", data, nil); err != nil {
		return err
	}

	if _, err := io.WriteString(w, literalIndent); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrWrite, err)
	}
	if err := literal.Encode(w, buf.Content(), literalIndent); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ";\n"); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrWrite, err)
	}
	return nil
}
