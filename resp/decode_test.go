package resp

import (
	"testing"

	"github.com/pkg/errors"
)

var decodeValidCases = []struct {
	enc  []byte
	want Frame
}{
	{[]byte{'+', '\r', '\n'}, SimpleString("")},
	{[]byte{'+', 'a', '\r', '\n'}, SimpleString("a")},
	{[]byte("+OK\r\n"), SimpleString("OK")},
	{[]byte("+ceci n'est pas un string\r\n"), SimpleString("ceci n'est pas un string")},
	{[]byte("-\r\n"), SimpleError("")},
	{[]byte("-ERR boom\r\n"), SimpleError("ERR boom")},
	{[]byte(":0\r\n"), Integer(0)},
	{[]byte(":123\r\n"), Integer(123)},
	{[]byte(":-123\r\n"), Integer(-123)},
	{[]byte(":1234567890123456789\r\n"), Integer(1234567890123456789)},
	{[]byte("$0\r\n\r\n"), BulkStringFrom("")},
	{[]byte("$5\r\nhello\r\n"), BulkStringFrom("hello")},
	{[]byte("$-1\r\n"), NullBulkString()},
	{[]byte("*0\r\n"), Array([]Frame{})},
	{[]byte("*1\r\n:10\r\n"), Array([]Frame{Integer(10)})},
	{[]byte("*-1\r\n"), NullArray()},
	{[]byte("*2\r\n$3\r\nget\r\n$5\r\nhello\r\n"), Array([]Frame{BulkStringFrom("get"), BulkStringFrom("hello")})},
	{[]byte("_\r\n"), Null()},
	{[]byte("#t\r\n"), Boolean(true)},
	{[]byte("#f\r\n"), Boolean(false)},
	{[]byte(",3.14\r\n"), Double(3.14)},
	{[]byte("~2\r\n$1\r\na\r\n$1\r\nb\r\n"), Set([]Frame{BulkStringFrom("a"), BulkStringFrom("b")})},
	{[]byte("%1\r\n$1\r\nk\r\n$1\r\nv\r\n"), Map([]MapEntry{{Key: BulkStringFrom("k"), Value: BulkStringFrom("v")}})},
}

func TestDecodeValid(t *testing.T) {
	for _, c := range decodeValidCases {
		buf := NewBuffer()
		buf.Write(c.enc)
		got, err := NewDecoder(buf).Decode()
		if err != nil {
			t.Errorf("%q: unexpected error: %v", c.enc, err)
			continue
		}
		if !got.Equal(c.want) {
			t.Errorf("%q: got %#v, want %#v", c.enc, got, c.want)
		}
		if buf.Len() != 0 {
			t.Errorf("%q: expected buffer fully consumed, %d bytes left", c.enc, buf.Len())
		}
	}
}

var decodeErrCases = []struct {
	enc []byte
	err error
}{
	{[]byte("_x\r\n"), ErrMissingCRLF},
	{[]byte(":123a\r\n"), ErrParseInt},
	{[]byte("$-3\r\n"), ErrInvalidFrameLength},
	{[]byte("*-3\r\n"), ErrInvalidFrameLength},
	{[]byte("#x\r\n"), ErrInvalidBoolean},
}

// decodeNeedMoreCases are byte sequences that a decoder can never
// resolve as-is, but which don't contain a hard structural error
// either: a simple-framed variant's \r\n isn't present yet, so the
// decoder reports NeedMore rather than guessing the stream is dead.
var decodeNeedMoreCases = [][]byte{
	[]byte("+a\rZ"),
	[]byte(":123\n"),
}

func TestDecodeAmbiguousNeedsMore(t *testing.T) {
	for _, enc := range decodeNeedMoreCases {
		buf := NewBuffer()
		buf.Write(enc)
		_, err := NewDecoder(buf).Decode()
		if err != ErrNeedMore {
			t.Errorf("%q: expected ErrNeedMore, got %v", enc, err)
		}
		if buf.Len() != len(enc) {
			t.Errorf("%q: buffer was advanced on NeedMore", enc)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, c := range decodeErrCases {
		buf := NewBuffer()
		buf.Write(c.enc)
		_, err := NewDecoder(buf).Decode()
		if err == nil {
			t.Errorf("%q: expected an error, got none", c.enc)
			continue
		}
		if errors.Cause(err) != c.err {
			t.Errorf("%q: expected error %v, got %v", c.enc, c.err, err)
		}
	}
}

func TestDecodeInvalidPrefix(t *testing.T) {
	buf := NewBuffer()
	buf.Write([]byte("!\r\n"))
	_, err := NewDecoder(buf).Decode()
	if _, ok := err.(*InvalidFrameTypeError); !ok {
		t.Errorf("expected *InvalidFrameTypeError, got %T (%v)", err, err)
	}
}

func TestDecodeEmptyBufferNeedsMore(t *testing.T) {
	buf := NewBuffer()
	_, err := NewDecoder(buf).Decode()
	if err != ErrNeedMore {
		t.Errorf("expected ErrNeedMore, got %v", err)
	}
}

// TestDecodeIncremental verifies the incremental decode property: for
// every byte sequence that encodes exactly one frame, splitting it
// anywhere and feeding the pieces one at a time yields NeedMore (without
// consuming) until the full frame has arrived, at which point decode
// succeeds and the buffer is left empty.
func TestDecodeIncremental(t *testing.T) {
	for _, c := range decodeValidCases {
		for split := 0; split <= len(c.enc); split++ {
			buf := NewBuffer()
			buf.Write(c.enc[:split])

			dec := NewDecoder(buf)
			if split < len(c.enc) {
				_, err := dec.Decode()
				if err != ErrNeedMore {
					t.Fatalf("%q split at %d: expected ErrNeedMore, got %v", c.enc, split, err)
				}
				if buf.Len() != split {
					t.Fatalf("%q split at %d: buffer was advanced on NeedMore", c.enc, split)
				}
			}

			buf.Write(c.enc[split:])
			got, err := dec.Decode()
			if err != nil {
				t.Fatalf("%q split at %d: unexpected error after completing buffer: %v", c.enc, split, err)
			}
			if !got.Equal(c.want) {
				t.Fatalf("%q split at %d: got %#v, want %#v", c.enc, split, got, c.want)
			}
			if buf.Len() != 0 {
				t.Fatalf("%q split at %d: expected buffer fully consumed", c.enc, split)
			}
		}
	}
}

func TestDecodeTrailingBytesLeftInBuffer(t *testing.T) {
	buf := NewBuffer()
	buf.Write([]byte("+a\r\n+b\r\n"))
	dec := NewDecoder(buf)

	got, err := dec.Decode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(SimpleString("a")) {
		t.Fatalf("got %#v, want SimpleString(a)", got)
	}
	if buf.Len() != 4 {
		t.Fatalf("expected 4 trailing bytes, got %d", buf.Len())
	}

	got, err = dec.Decode()
	if err != nil {
		t.Fatalf("unexpected error on second decode: %v", err)
	}
	if !got.Equal(SimpleString("b")) {
		t.Fatalf("got %#v, want SimpleString(b)", got)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected buffer empty, got %d bytes left", buf.Len())
	}
}

func BenchmarkDecodeSimpleString(b *testing.B) {
	enc := decodeValidCases[2].enc
	for i := 0; i < b.N; i++ {
		buf := NewBuffer()
		buf.Write(enc)
		if _, err := NewDecoder(buf).Decode(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeArray(b *testing.B) {
	enc := decodeValidCases[16].enc
	for i := 0; i < b.N; i++ {
		buf := NewBuffer()
		buf.Write(enc)
		if _, err := NewDecoder(buf).Decode(); err != nil {
			b.Fatal(err)
		}
	}
}
