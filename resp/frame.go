package resp

// Kind identifies which of the ten RESP variants a Frame holds.
type Kind int

const (
	KindSimpleString Kind = iota
	KindSimpleError
	KindInteger
	KindBulkString
	KindArray
	KindNull
	KindBoolean
	KindDouble
	KindMap
	KindSet
)

func (k Kind) String() string {
	switch k {
	case KindSimpleString:
		return "SimpleString"
	case KindSimpleError:
		return "SimpleError"
	case KindInteger:
		return "Integer"
	case KindBulkString:
		return "BulkString"
	case KindArray:
		return "Array"
	case KindNull:
		return "Null"
	case KindBoolean:
		return "Boolean"
	case KindDouble:
		return "Double"
	case KindMap:
		return "Map"
	case KindSet:
		return "Set"
	default:
		return "Unknown"
	}
}

// MapEntry is one key/value pair of a Map frame.
type MapEntry struct {
	Key   Frame
	Value Frame
}

// Frame is the RESP tagged union. It is immutable after construction and
// cheap to copy; aggregate payloads are held by reference (slices), so
// sharing a Frame across goroutines is safe as long as nobody mutates the
// slices backing an Array/Map/Set/BulkString after handing the Frame off.
type Frame struct {
	kind Kind

	text string // SimpleString / SimpleError payload
	i64  int64
	f64  float64
	b    bool

	bulk     []byte
	bulkNull bool

	arr     []Frame
	arrNull bool

	mp  []MapEntry
	set []Frame
}

// Kind returns the frame's variant.
func (f Frame) Kind() Kind { return f.kind }

// SimpleString constructs a SimpleString frame. s must not contain \r or \n;
// the codec does not validate this on encode, per the producer's contract.
func SimpleString(s string) Frame {
	return Frame{kind: KindSimpleString, text: s}
}

// SimpleError constructs a SimpleError frame. Same \r\n contract as
// SimpleString.
func SimpleError(s string) Frame {
	return Frame{kind: KindSimpleError, text: s}
}

// Integer constructs an Integer frame.
func Integer(n int64) Frame {
	return Frame{kind: KindInteger, i64: n}
}

// BulkString constructs a non-null BulkString frame from b. The byte slice
// is retained, not copied.
func BulkString(b []byte) Frame {
	return Frame{kind: KindBulkString, bulk: b}
}

// BulkStringFrom is a convenience constructor for a BulkString from a Go
// string.
func BulkStringFrom(s string) Frame {
	return BulkString([]byte(s))
}

// NullBulkString constructs the null BulkString ($-1).
func NullBulkString() Frame {
	return Frame{kind: KindBulkString, bulkNull: true}
}

// Array constructs a non-null Array frame from xs. A nil, non-nil-checked
// xs still produces a non-null, zero-length array; use NullArray for the
// RESP null array.
func Array(xs []Frame) Frame {
	if xs == nil {
		xs = []Frame{}
	}
	return Frame{kind: KindArray, arr: xs}
}

// NullArray constructs the null Array frame (*-1).
func NullArray() Frame {
	return Frame{kind: KindArray, arrNull: true}
}

// Null constructs the RESP3 Null frame (_).
func Null() Frame {
	return Frame{kind: KindNull}
}

// Boolean constructs a Boolean frame.
func Boolean(b bool) Frame {
	return Frame{kind: KindBoolean, b: b}
}

// Double constructs a Double frame.
func Double(f float64) Frame {
	return Frame{kind: KindDouble, f64: f}
}

// Map constructs a Map frame from an ordered list of key/value pairs.
func Map(entries []MapEntry) Frame {
	if entries == nil {
		entries = []MapEntry{}
	}
	return Frame{kind: KindMap, mp: entries}
}

// Set constructs a Set frame from an ordered list of elements.
func Set(xs []Frame) Frame {
	if xs == nil {
		xs = []Frame{}
	}
	return Frame{kind: KindSet, set: xs}
}

// Text returns the payload of a SimpleString or SimpleError frame.
func (f Frame) Text() string { return f.text }

// Int returns the payload of an Integer frame.
func (f Frame) Int() int64 { return f.i64 }

// Float returns the payload of a Double frame.
func (f Frame) Float() float64 { return f.f64 }

// Bool returns the payload of a Boolean frame.
func (f Frame) Bool() bool { return f.b }

// IsNullBulk reports whether this BulkString frame is the null bulk string.
func (f Frame) IsNullBulk() bool { return f.kind == KindBulkString && f.bulkNull }

// Bulk returns the byte payload of a BulkString frame, and false if it is
// the null bulk string.
func (f Frame) Bulk() ([]byte, bool) {
	if f.bulkNull {
		return nil, false
	}
	return f.bulk, true
}

// IsNullArray reports whether this Array frame is the null array.
func (f Frame) IsNullArray() bool { return f.kind == KindArray && f.arrNull }

// Elements returns the child frames of an Array frame, and false if it is
// the null array.
func (f Frame) Elements() ([]Frame, bool) {
	if f.arrNull {
		return nil, false
	}
	return f.arr, true
}

// Entries returns the key/value pairs of a Map frame.
func (f Frame) Entries() []MapEntry { return f.mp }

// Members returns the elements of a Set frame.
func (f Frame) Members() []Frame { return f.set }

// IsBulkString reports whether the command argument at this Frame is a
// non-null BulkString, the only argument shape commands accept for
// keys/fields/members.
func (f Frame) IsBulkString() bool {
	return f.kind == KindBulkString && !f.bulkNull
}

// Equal reports whether f and other represent the same frame, including
// the null/empty distinction for BulkString and Array.
func (f Frame) Equal(other Frame) bool {
	if f.kind != other.kind {
		return false
	}
	switch f.kind {
	case KindSimpleString, KindSimpleError:
		return f.text == other.text
	case KindInteger:
		return f.i64 == other.i64
	case KindDouble:
		return f.f64 == other.f64
	case KindBoolean:
		return f.b == other.b
	case KindNull:
		return true
	case KindBulkString:
		if f.bulkNull != other.bulkNull {
			return false
		}
		if f.bulkNull {
			return true
		}
		return bytesEqual(f.bulk, other.bulk)
	case KindArray, KindSet:
		var a, b []Frame
		if f.kind == KindArray {
			if f.arrNull != other.arrNull {
				return false
			}
			if f.arrNull {
				return true
			}
			a, b = f.arr, other.arr
		} else {
			a, b = f.set, other.set
		}
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(f.mp) != len(other.mp) {
			return false
		}
		for i := range f.mp {
			if !f.mp[i].Key.Equal(other.mp[i].Key) || !f.mp[i].Value.Equal(other.mp[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
