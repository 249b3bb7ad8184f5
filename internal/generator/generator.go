package generator

import (
	"log/slog"

	"github.com/xll-gen/bin2c/internal/config"
	"github.com/xll-gen/bin2c/internal/source"
)

// Generate writes the header and the implementation for buf into the
// target described by opts, and verifies the implementation when
// opts.Verify is set.
//
// Parameters:
//   - opts: The run options built from the command line.
//   - buf: The loaded input file.
//
// Returns:
//   - error: An error if any step of the generation fails. The header may
//     already exist when the implementation fails.
func Generate(opts config.Options, buf *source.Buffer) error {
	target := opts.Target
	slog.Info("Generating embedded array",
		"input", opts.Input,
		"name", target.Name,
		"type", opts.Type.String(),
		"size", buf.Size)

	// 1. Header
	headerPath := target.HeaderPath()
	if err := WriteHeader(headerPath, target.Name, buf.Size, opts.Type); err != nil {
		return err
	}
	slog.Debug("Generated header", "path", headerPath, "declared", HeaderSize(buf.Size, opts.Type))

	// 2. Implementation
	sourcePath := target.SourcePath()
	if err := WriteSource(sourcePath, target.Name, buf, opts.Type); err != nil {
		return err
	}
	slog.Debug("Generated source", "path", sourcePath, "declared", SourceSize(buf.Size))

	// 3. Optional round-trip check
	if opts.Verify {
		if err := Verify(sourcePath, target.Name, buf.Content()); err != nil {
			return err
		}
		slog.Debug("Verified source", "path", sourcePath)
	}

	return nil
}
