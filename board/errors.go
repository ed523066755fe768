package board

import (
	"errors"
	"fmt"
)

// Sentinel errors; test with errors.Is.
var (
	// ErrInvalidFEN indicates a malformed FEN or board text string.
	ErrInvalidFEN = errors.New("invalid FEN")

	// ErrInvalidMoveText indicates move text that is not coordinate notation.
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrInvalidMove indicates a move whose origin square is empty.
	ErrInvalidMove = errors.New("invalid move")

	// ErrIllegalMove indicates a well-formed move that is not legal here.
	ErrIllegalMove = errors.New("illegal move")
)

// ParseError carries the offending input and the field that failed.
type ParseError struct {
	Input string
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%v: %s in %q", e.Err, e.Field, e.Input)
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }
