// Package errors provides sentinel errors and error types for the chess rules core.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedNotation indicates a placement or FEN string that could not be fully parsed.
	ErrMalformedNotation = errors.New("malformed notation")

	// ErrMalformedState indicates a state string that is not 64 valid characters.
	ErrMalformedState = errors.New("malformed state string")

	// ErrInvalidSquare indicates coordinates off the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidTag indicates a host piece tag that does not encode a piece.
	ErrInvalidTag = errors.New("invalid piece tag")

	// ErrInvalidColour indicates an unknown side name.
	ErrInvalidColour = errors.New("invalid colour")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSnapshotNotFound indicates no saved state exists for a game ID.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrGameNotStarted indicates an operation that needs SetUpBoard first.
	ErrGameNotStarted = errors.New("game not started")
)

// NotationError describes where a notation string stopped parsing.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type NotationError struct {
	Err      error  // The underlying error
	Input    string // The full input text
	Offset   int    // 0-based byte offset of the offending character (-1 if not applicable)
	Char     byte   // The offending character (0 if not applicable)
	Expected string // What was expected at Offset
}

// Error returns a formatted error message with location and context.
func (e *NotationError) Error() string {
	var parts []string

	if e.Offset >= 0 {
		if e.Char != 0 {
			parts = append(parts, fmt.Sprintf("offset %d: unexpected %q", e.Offset, e.Char))
		} else {
			parts = append(parts, fmt.Sprintf("offset %d", e.Offset))
		}
	}

	if e.Expected != "" {
		parts = append(parts, "expected "+e.Expected)
	}

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("in %q", e.Input))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ", "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	return "notation error"
}

// Unwrap returns the underlying error.
func (e *NotationError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
