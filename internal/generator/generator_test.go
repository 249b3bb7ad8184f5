package generator

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xll-gen/bin2c/internal/config"
	"github.com/xll-gen/bin2c/internal/errs"
	"github.com/xll-gen/bin2c/internal/source"
)

func newBuffer(content []byte) *source.Buffer {
	data := make([]byte, len(content)+1)
	copy(data, content)
	return &source.Buffer{Bytes: data, Size: len(content)}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestWriteHeader(t *testing.T) {
	tests := []struct {
		name string
		size int
		ct   config.ContentType
		want string
	}{
		{
			name: "binary",
			size: 3,
			ct:   config.Binary,
			want: "#pragma once\nextern const unsigned char data[3];\nstatic const unsigned long long data_size = 3;\n",
		},
		{
			name: "text reserves terminator",
			size: 3,
			ct:   config.Text,
			want: "#pragma once\nextern const char data[4];\nstatic const unsigned long long data_size = 4;\n",
		},
		{
			name: "empty text",
			size: 0,
			ct:   config.Text,
			want: "#pragma once\nextern const char data[1];\nstatic const unsigned long long data_size = 1;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data.h")
			require.NoError(t, WriteHeader(path, "data", tt.size, tt.ct))
			assert.Equal(t, tt.want, readFile(t, path))
		})
	}
}

func TestWriteHeader_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "font.h")

	require.NoError(t, WriteHeader(path, "font", 4096, config.Binary))
	first := readFile(t, path)
	require.NoError(t, WriteHeader(path, "font", 4096, config.Binary))

	assert.Equal(t, first, readFile(t, path))
}

func TestWriteHeader_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "data.h")

	err := WriteHeader(path, "data", 1, config.Binary)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrIO))
}

func TestWriteSource(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		ct      config.ContentType
		want    string
	}{
		{
			name:    "quote and newline",
			content: []byte{0x41, 0x22, 0x0A},
			ct:      config.Binary,
			want:    "const unsigned char data[4] =\n    \"A\\\"\\n\\0\";\n",
		},
		{
			name:    "empty text",
			content: []byte{},
			ct:      config.Text,
			want:    "const char data[1] =\n    \"\\0\";\n",
		},
		{
			name:    "empty binary",
			content: []byte{},
			ct:      config.Binary,
			want:    "const unsigned char data[1] =\n    \"\\0\";\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data.c")
			require.NoError(t, WriteSource(path, "data", newBuffer(tt.content), tt.ct))
			assert.Equal(t, tt.want, readFile(t, path))
		})
	}
}

func TestWriteSource_MultiLine(t *testing.T) {
	content := bytes.Repeat([]byte("0123456789"), 13)
	path := filepath.Join(t.TempDir(), "digits.c")
	require.NoError(t, WriteSource(path, "digits", newBuffer(content), config.Text))

	lines := strings.Split(strings.TrimSuffix(readFile(t, path), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "const char digits[131] =", lines[0])
	assert.Equal(t, `    "`+strings.Repeat("0123456789", 6)+`"`, lines[1])
	assert.Equal(t, `    "`+strings.Repeat("0123456789", 6)+`"`, lines[2])
	assert.Equal(t, `    "0123456789\0";`, lines[3])
}

func TestWriteSource_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "data.c")

	err := WriteSource(path, "data", newBuffer([]byte("x")), config.Binary)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrIO))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

type brokenWriter struct {
	limit int
	n     int
}

func (w *brokenWriter) Write(p []byte) (int, error) {
	if w.n+len(p) > w.limit {
		return 0, errors.New("no space left on device")
	}
	w.n += len(p)
	return len(p), nil
}

func TestRenderSource_WriteError(t *testing.T) {
	buf := newBuffer(bytes.Repeat([]byte{0xff}, 200))

	for _, limit := range []int{0, 10, 40, 500} {
		err := renderSource(&brokenWriter{limit: limit}, "data", buf, config.Binary)
		require.Error(t, err, "limit %d", limit)
		assert.True(t, errors.Is(err, errs.ErrWrite), "limit %d", limit)
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	content := []byte("#version 330 core\nout vec4 color;\nvoid main() { color = vec4(1.0); }\n")
	opts := config.Options{
		Target: config.Target{Dir: dir, Name: "shader"},
		Input:  "shader.glsl",
		Type:   config.Text,
		Verify: true,
	}

	require.NoError(t, Generate(opts, newBuffer(content)))

	header := readFile(t, filepath.Join(dir, "shader.h"))
	assert.Contains(t, header, "extern const char shader[70];")
	assert.Contains(t, header, "static const unsigned long long shader_size = 70;")

	src := readFile(t, filepath.Join(dir, "shader.c"))
	assert.True(t, strings.HasPrefix(src, "const char shader[70] =\n    \""))
	assert.True(t, strings.HasSuffix(src, "\\0\";\n"))
}

func TestGenerate_BinaryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	var content []byte
	for i := 0; i < 256; i++ {
		content = append(content, byte(i), '7')
	}
	opts := config.Options{
		Target: config.Target{Dir: dir, Name: "blob"},
		Type:   config.Binary,
	}

	require.NoError(t, Generate(opts, newBuffer(content)))
	assert.NoError(t, Verify(filepath.Join(dir, "blob.c"), "blob", content))
	assert.Contains(t, readFile(t, filepath.Join(dir, "blob.h")), "extern const unsigned char blob[512];")
}

func TestVerify_DetectsMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.c")
	require.NoError(t, WriteSource(path, "data", newBuffer([]byte("abc")), config.Binary))

	tests := []struct {
		name    string
		content []byte
		mangle  func(string) string
		wantErr string
	}{
		{"different bytes", []byte("abd"), nil, "first difference at offset 2"},
		{"different size", []byte("abcd"), nil, "declaration of data[5] not found"},
		{"broken literal", []byte("abc"), func(s string) string { return strings.Replace(s, `\0`, `\q`, 1) }, "unknown escape"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := path
			if tt.mangle != nil {
				p = filepath.Join(dir, "mangled.c")
				require.NoError(t, os.WriteFile(p, []byte(tt.mangle(readFile(t, path))), 0644))
			}
			err := Verify(p, "data", tt.content)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrVerify))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestVerify_MissingFile(t *testing.T) {
	err := Verify(filepath.Join(t.TempDir(), "nope.c"), "data", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrIO))
}
