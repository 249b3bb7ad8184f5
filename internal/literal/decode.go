package literal

import (
	"fmt"
	"strings"
)

// Decode parses a sequence of adjacent C string literals, separated only by
// whitespace, and returns the concatenated bytes. The implicit terminator of
// each literal is not included.
func Decode(src string) ([]byte, error) {
	var out []byte
	i := 0
	for {
		for i < len(src) && isSpace(src[i]) {
			i++
		}
		if i == len(src) {
			return out, nil
		}
		if src[i] != '"' {
			return nil, fmt.Errorf("offset %d: expected '\"', found %q", i, src[i])
		}
		i++

		for {
			if i == len(src) {
				return nil, fmt.Errorf("offset %d: unterminated literal", i)
			}
			c := src[i]
			if c == '"' {
				i++
				break
			}
			if c == '\n' {
				return nil, fmt.Errorf("offset %d: newline inside literal", i)
			}
			if c != '\\' {
				out = append(out, c)
				i++
				continue
			}

			b, n, err := decodeEscape(src[i:])
			if err != nil {
				return nil, fmt.Errorf("offset %d: %w", i, err)
			}
			out = append(out, b)
			i += n
		}
	}
}

// decodeEscape decodes the escape sequence at the start of s, which begins
// with a backslash, and returns the byte and the number of characters used.
func decodeEscape(s string) (byte, int, error) {
	if len(s) < 2 {
		return 0, 0, fmt.Errorf("incomplete escape")
	}
	switch c := s[1]; c {
	case '"', '\\', '\'', '?':
		return c, 2, nil
	case 'n':
		return '\n', 2, nil
	case 't':
		return '\t', 2, nil
	case 'r':
		return '\r', 2, nil
	case 'a':
		return '\a', 2, nil
	case 'b':
		return '\b', 2, nil
	case 'f':
		return '\f', 2, nil
	case 'v':
		return '\v', 2, nil
	case 'x':
		n := 2
		v := 0
		for n < len(s) && strings.IndexByte("0123456789abcdefABCDEF", s[n]) >= 0 {
			v = v*16 + hexValue(s[n])
			if v > 0xff {
				return 0, 0, fmt.Errorf("hex escape out of range")
			}
			n++
		}
		if n == 2 {
			return 0, 0, fmt.Errorf("hex escape without digits")
		}
		return byte(v), n, nil
	default:
		if c < '0' || c > '7' {
			return 0, 0, fmt.Errorf("unknown escape \\%c", c)
		}
		n := 1
		v := 0
		for n < len(s) && n < 4 && s[n] >= '0' && s[n] <= '7' {
			v = v*8 + int(s[n]-'0')
			n++
		}
		if v > 0xff {
			return 0, 0, fmt.Errorf("octal escape out of range")
		}
		return byte(v), n, nil
	}
}

func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
