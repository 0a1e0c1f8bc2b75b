// File: argconf/errors.go
package argconf

import (
	"errors"
	"fmt"
)

// NoConfigFlag is the reserved boolean flag that disables config file loading
// for a single invocation. It is added to every matcher; a schema declaring
// an option with this name fails validation.
const NoConfigFlag = "no-config"

var (
	// ErrSchema reports a malformed Description or invocation token list.
	// This is a caller bug and should fail the program loudly at startup.
	ErrSchema = errors.New("invalid option schema")

	// ErrMatch reports a failed match: an unknown option, a missing required
	// option, or a value-taking option given without its value. No Resolved
	// is produced; callers should print usage and exit non-zero.
	ErrMatch = errors.New("argument matching failed")

	// ErrFileAccess reports a config file path that is set but unreadable.
	// The loader recovers it into a diagnostic and an empty token list, so it
	// never aborts resolution on its own.
	ErrFileAccess = errors.New("config file not readable")
)

// LineError is a recoverable per-line failure while reading a config file.
// The rest of the file is still processed.
type LineError struct {
	Path string
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
