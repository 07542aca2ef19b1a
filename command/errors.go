package command

import "github.com/pkg/errors"

// Sentinel errors wrapped with context via github.com/pkg/errors at the
// point they're returned.
var (
	// ErrEmptyCommand is returned when the request array has no elements.
	ErrEmptyCommand = errors.New("command is empty")
	// ErrInvalidCommand is returned when the first array element is not a
	// BulkString naming a value that can be interpreted as a command.
	ErrInvalidCommand = errors.New("invalid command")
	// ErrInvalidArgument is returned when arity or argument shape doesn't
	// match what the command expects.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidUTF8 is returned when a BulkString required to be a UTF-8
	// string key or field carries bytes that don't decode as one.
	ErrInvalidUTF8 = errors.New("invalid utf-8 in argument")
)
