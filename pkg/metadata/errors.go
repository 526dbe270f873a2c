package metadata

import (
	"errors"
	"fmt"
)

// Sentinel errors for metadata validation failures.
// Use errors.Is() to check for these errors.
var (
	// ErrInvalidKey is returned when a key fails the legality check after normalization.
	ErrInvalidKey = errors.New("invalid metadata key")
	// ErrInvalidValue is returned when a value does not match its key's binary
	// classification, or its content fails the legality check.
	ErrInvalidValue = errors.New("invalid metadata value")
)

// KeyError reports a key rejected during normalization.
type KeyError struct {
	// Key is the key exactly as the caller supplied it, before lower-casing.
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("metadata key %q contains illegal characters", e.Key)
}

func (e *KeyError) Unwrap() error { return ErrInvalidKey }

// ValueError reports a value rejected for a given normalized key.
type ValueError struct {
	// Key is the normalized key the value was destined for.
	Key string
	msg string
}

func (e *ValueError) Error() string { return e.msg }

func (e *ValueError) Unwrap() error { return ErrInvalidValue }

func errBinaryValueRequired(key string) *ValueError {
	return &ValueError{Key: key, msg: fmt.Sprintf("keys that end with %q must have binary values", binarySuffix)}
}

func errStringValueRequired(key string) *ValueError {
	return &ValueError{Key: key, msg: fmt.Sprintf("keys that don't end with %q must have string values", binarySuffix)}
}

func errIllegalValueContent(key, value string) *ValueError {
	return &ValueError{Key: key, msg: fmt.Sprintf("metadata string value %q contains illegal characters", value)}
}
