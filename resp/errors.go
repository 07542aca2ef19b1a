package resp

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNeedMore is returned by Decode when the buffer does not yet
	// contain a complete frame. The buffer is left untouched; the caller
	// should append more bytes and call Decode again.
	ErrNeedMore = errors.New("resp: need more bytes")

	// ErrInvalidFrameLength is returned when a length prefix is negative
	// outside of the two null sentinels ($-1 and *-1).
	ErrInvalidFrameLength = errors.New("resp: invalid frame length")

	// ErrParseInt is returned when an Integer frame's payload is not a
	// valid decimal literal.
	ErrParseInt = errors.New("resp: invalid integer")

	// ErrParseFloat is returned when a Double frame's payload is not a
	// valid floating point literal.
	ErrParseFloat = errors.New("resp: invalid double")

	// ErrMissingCRLF is returned when a line-terminated frame is not
	// terminated by \r\n within the buffered bytes that should contain it.
	ErrMissingCRLF = errors.New("resp: missing CRLF")

	// ErrInvalidBoolean is returned when a Boolean frame's payload is
	// anything other than 't' or 'f'.
	ErrInvalidBoolean = errors.New("resp: invalid boolean")
)

// InvalidFrameTypeError is returned when the first byte of a frame does
// not match any known RESP prefix.
type InvalidFrameTypeError struct {
	// Prefix is the unrecognized byte that was peeked.
	Prefix byte
}

func (e *InvalidFrameTypeError) Error() string {
	return fmt.Sprintf("resp: invalid frame type %q", e.Prefix)
}

// IsNeedMore reports whether err is (or wraps) ErrNeedMore.
func IsNeedMore(err error) bool {
	return errors.Cause(err) == ErrNeedMore
}
