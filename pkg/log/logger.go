package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu sync.Mutex
)

// Init initializes the global logger.
// It configures the default slog logger to write to the specified path (or stderr)
// at the specified level.
//
// path: Log file path. If empty, logs to stderr so generated output on stdout stays clean.
// level: Log level ("debug", "info", "warn", "error"). Defaults to "info".
//
// The returned function closes the log file, if one was opened.
func Init(path string, level string) (func() error, error) {
	mu.Lock()
	defer mu.Unlock()

	var w io.Writer = os.Stderr
	closer := func() error { return nil }
	if path != "" {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return closer, err
			}
		}

		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return closer, err
		}
		w = f
		closer = f.Close
	}

	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	handler := slog.NewTextHandler(w, opts)
	slog.SetDefault(slog.New(handler))
	return closer, nil
}

// ParseLevel converts a level name into a slog.Level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
