package metadata

import "strings"

// binarySuffix marks keys whose values travel base64-encoded on the wire.
const binarySuffix = "-bin"

// Oracle decides which keys and values the transport will accept on the wire.
// The container never inspects how a predicate is implemented; it only
// branches on the boolean results.
type Oracle interface {
	// KeyIsLegal reports whether a normalized (lower-cased) key may be sent.
	KeyIsLegal(key string) bool
	// KeyIsBinary reports whether a normalized key takes binary values.
	KeyIsBinary(key string) bool
	// NonBinaryValueIsLegal reports whether a string value may be sent
	// under a non-binary key.
	NonBinaryValueIsLegal(value string) bool
}

// DefaultOracle enforces the HTTP/2 header grammar used by the transport:
// keys are non-empty and restricted to lowercase letters, digits, '-', '_'
// and '.'; binary keys end in "-bin"; string values are printable ASCII
// (0x20-0x7E).
var DefaultOracle Oracle = http2Oracle{}

type http2Oracle struct{}

func (http2Oracle) KeyIsLegal(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case 'a' <= c && c <= 'z':
		case '0' <= c && c <= '9':
		case c == '-' || c == '_' || c == '.':
		default:
			return false
		}
	}
	return true
}

func (http2Oracle) KeyIsBinary(key string) bool {
	return strings.HasSuffix(key, binarySuffix)
}

func (http2Oracle) NonBinaryValueIsLegal(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] > 0x7e {
			return false
		}
	}
	return true
}
