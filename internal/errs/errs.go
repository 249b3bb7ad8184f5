// Package errs defines the error kinds reported by bin2c.
// Callers wrap one of the sentinels with fmt.Errorf("...: %w", ...) and the
// entry point classifies the result with errors.Is.
package errs

import "errors"

var (
	// ErrArgument indicates malformed or missing command-line arguments,
	// including an unrecognized content type token.
	ErrArgument = errors.New("invalid arguments")

	// ErrIO indicates that the input could not be read or an output file
	// could not be opened, flushed or closed.
	ErrIO = errors.New("i/o failure")

	// ErrWrite indicates that the sink rejected a write while the literal
	// was being encoded. The partial output is not rolled back by the encoder.
	ErrWrite = errors.New("write failed")

	// ErrVerify indicates that a generated source file did not decode back
	// to the input bytes.
	ErrVerify = errors.New("verification failed")
)

// Exit status codes returned by the command line.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitArgument = 2
)

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrArgument):
		return ExitArgument
	default:
		return ExitFailure
	}
}
