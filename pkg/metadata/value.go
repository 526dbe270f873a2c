package metadata

import "fmt"

// ValueKind discriminates the two shapes a metadata value can take on the wire.
type ValueKind int

const (
	// KindString is a printable-ASCII string value for a regular key.
	KindString ValueKind = iota
	// KindBinary is an opaque byte blob for a "-bin" key.
	KindBinary
)

// Value is a single metadata value: either a string or a binary blob.
// The kind is fixed at construction; use String or Binary to build one.
// The zero Value is an empty string value.
type Value struct {
	kind ValueKind
	str  string
	bin  []byte
}

// String builds a string-kind value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Binary builds a binary-kind value. The byte slice is not copied; callers
// that keep mutating the slice should pass their own copy.
func Binary(b []byte) Value {
	return Value{kind: KindBinary, bin: b}
}

// Kind reports whether the value is a string or a binary blob.
func (v Value) Kind() ValueKind { return v.kind }

// IsBinary reports whether the value is a binary blob.
func (v Value) IsBinary() bool { return v.kind == KindBinary }

// Text returns the string payload. It returns "" for binary values.
func (v Value) Text() string { return v.str }

// Bytes returns the binary payload. It returns nil for string values.
func (v Value) Bytes() []byte { return v.bin }

// String renders the value for logs and error messages.
func (v Value) String() string {
	if v.kind == KindBinary {
		return fmt.Sprintf("binary(%d bytes)", len(v.bin))
	}
	return v.str
}

// clone returns a copy that shares no mutable state with the receiver.
func (v Value) clone() Value {
	if v.kind == KindBinary && v.bin != nil {
		b := make([]byte, len(v.bin))
		copy(b, v.bin)
		return Value{kind: KindBinary, bin: b}
	}
	return v
}
