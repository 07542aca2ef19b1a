// Package resp implements an incremental encoder/decoder for the Redis
// Serialization Protocol (RESP2/RESP3 subset used by this service).
//
// See http://redis.io/topics/protocol for the reference.
package resp

// Buffer is a growable, front-consumable byte queue. Callers append bytes
// received off the wire to the tail with Write, and the Decoder consumes
// bytes off the front with Advance once a full frame has been recognized.
//
// Buffer is not safe for concurrent use; a single connection's bytes must
// be fed to a single Buffer from a single goroutine at a time.
type Buffer struct {
	data []byte
}

// NewBuffer returns an empty Buffer ready for use.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Write appends p to the tail of the buffer. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// Bytes returns the unconsumed bytes currently in the buffer, without
// removing them. The returned slice is only valid until the next call to
// Write or Advance.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the number of unconsumed bytes in the buffer.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Advance removes the first n bytes from the front of the buffer. It
// panics if n is negative or greater than Len, which would indicate a
// decoder bug rather than a malformed wire frame.
func (b *Buffer) Advance(n int) {
	if n < 0 || n > len(b.data) {
		panic("resp: Advance out of range")
	}
	// Copy the remainder down to keep the backing array from growing
	// unboundedly across many small frames.
	remaining := len(b.data) - n
	copy(b.data, b.data[n:])
	b.data = b.data[:remaining]
}

// Reset empties the buffer, discarding any unconsumed bytes.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}
