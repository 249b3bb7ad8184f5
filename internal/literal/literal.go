// Package literal serializes raw bytes into a C string literal broken across
// several source lines, and parses such literals back into bytes.
package literal

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xll-gen/bin2c/internal/errs"
)

// RowBreak is the number of rendered characters after which a new physical
// line is started.
const RowBreak = 60

var (
	// shortEscapes holds the shortest rendering of every byte.
	shortEscapes [256]string
	// wideEscapes holds the rendering used when the next byte is an octal
	// digit. Only octal escapes differ from shortEscapes.
	wideEscapes [256]string
)

func init() {
	for i := 0; i < 256; i++ {
		b := byte(i)
		switch {
		case b == '"':
			shortEscapes[i] = `\"`
		case b == '\n':
			shortEscapes[i] = `\n`
		case b == '\\':
			shortEscapes[i] = `\\`
		case b == 0:
			shortEscapes[i] = `\0`
			wideEscapes[i] = `\000`
			continue
		case b >= 32 && b <= 126:
			shortEscapes[i] = string(rune(b))
		default:
			shortEscapes[i] = fmt.Sprintf(`\%o`, b)
			wideEscapes[i] = fmt.Sprintf(`\%03o`, b)
			continue
		}
		wideEscapes[i] = shortEscapes[i]
	}
}

// Escape returns the literal text for b. next is the byte that follows b in
// the input, or -1 at the end of the input. An octal escape followed by an
// octal digit is widened to three digits so the digit is not absorbed. A '?'
// followed by another '?' is written as \77 so no trigraph can form.
func Escape(b byte, next int) string {
	if b == '?' && next == '?' {
		return `\77`
	}
	if next >= '0' && next <= '7' {
		return wideEscapes[b]
	}
	return shortEscapes[b]
}

// errWriter remembers the first write error and drops every later write.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

// Encode writes data to w as a quoted literal. The output starts with the
// opening quote and ends with an explicit \0 escape and the closing quote.
// Every continuation line starts with indent.
//
// A line is broken before a byte once RowBreak characters have been written
// on it, so a break never falls inside an escape. Errors from w are returned
// wrapping errs.ErrWrite; whatever was written before the failure stays in w.
func Encode(w io.Writer, data []byte, indent string) error {
	ew := &errWriter{w: w}
	lineBreak := "\"\n" + indent + "\""

	ew.write(`"`)
	width := 0
	for i, b := range data {
		if width >= RowBreak {
			ew.write(lineBreak)
			width = 0
		}
		next := -1
		if i+1 < len(data) {
			next = int(data[i+1])
		}
		s := Escape(b, next)
		ew.write(s)
		width += len(s)
		if ew.err != nil {
			break
		}
	}
	ew.write(`\0"`)

	if ew.err != nil {
		return fmt.Errorf("%w: %w", errs.ErrWrite, ew.err)
	}
	return nil
}

// Fragments returns the contents of each physical line that Encode produces
// for data, without the surrounding quotes. The last fragment always ends
// with the \0 escape.
func Fragments(data []byte) []string {
	var buf bytes.Buffer
	// bytes.Buffer never fails a write.
	_ = Encode(&buf, data, "")
	s := buf.String()
	s = s[1 : len(s)-1]
	return strings.Split(s, "\"\n\"")
}
