package generator

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/xll-gen/bin2c/internal/errs"
	"github.com/xll-gen/bin2c/internal/literal"
)

// Verify reads a generated source file back and checks that its initializer
// decodes to content followed by the trailing NUL, and that the declared
// array size matches.
func Verify(path, name string, content []byte) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("verify: could not read %s: %w: %w", path, errs.ErrIO, err)
	}
	text := string(data)

	want := make([]byte, 0, len(content)+1)
	want = append(want, content...)
	want = append(want, 0)

	decl := fmt.Sprintf(" %s[%d] =", name, len(want))
	eq := strings.Index(text, decl)
	if eq < 0 {
		return fmt.Errorf("verify %s: declaration of %s[%d] not found: %w", path, name, len(want), errs.ErrVerify)
	}
	body := text[eq+len(decl):]
	end := strings.LastIndex(body, ";")
	if end < 0 {
		return fmt.Errorf("verify %s: missing ';': %w", path, errs.ErrVerify)
	}

	got, err := literal.Decode(body[:end])
	if err != nil {
		return fmt.Errorf("verify %s: %w: %w", path, errs.ErrVerify, err)
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("verify %s: decoded %d bytes, want %d (first difference at offset %d): %w",
			path, len(got), len(want), firstDifference(got, want), errs.ErrVerify)
	}
	return nil
}

func firstDifference(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
