// Package metadata implements the per-call header container exchanged
// between client and server over the wirecall transport.
//
// An MD maps normalized (lowercase) keys to ordered value sequences,
// mirroring HTTP header semantics: Set replaces, Add appends, and keys
// differing only in case are the same key. Keys ending in "-bin" carry
// opaque binary blobs; all other keys carry printable-ASCII strings. Every
// mutation is checked against an Oracle before it lands, so anything stored
// in an MD is safe to hand to the wire layer as-is.
//
// An MD is not internally synchronized. The expected shape is one MD per
// in-flight call with a single writer; use Clone to hand independent copies
// to concurrent consumers.
package metadata

import "sort"

// Wire is the raw key to value-sequence mapping exchanged with the
// transport serialization layer. It is an interchange shape, not a public
// wire format: code outside the transport boundary should go through MD.
type Wire map[string][]Value

// MD is a metadata container scoped to one RPC call.
type MD struct {
	oracle Oracle
	m      map[string][]Value
}

// New returns an empty container validated by DefaultOracle.
func New() *MD {
	return NewWithOracle(DefaultOracle)
}

// NewWithOracle returns an empty container validated by the given oracle.
func NewWithOracle(o Oracle) *MD {
	if o == nil {
		o = DefaultOracle
	}
	return &MD{oracle: o, m: make(map[string][]Value)}
}

// Set replaces key's value sequence with the single value v.
// The key is normalized first; a KeyError or ValueError means the
// container was not changed.
func (md *MD) Set(key string, v Value) error {
	k, err := md.normalizeKey(key)
	if err != nil {
		return err
	}
	if err := md.validate(k, v); err != nil {
		return err
	}
	md.m[k] = []Value{v}
	return nil
}

// Add appends v to key's value sequence, creating the sequence if the key
// is absent. Normalization and validation match Set.
func (md *MD) Add(key string, v Value) error {
	k, err := md.normalizeKey(key)
	if err != nil {
		return err
	}
	if err := md.validate(k, v); err != nil {
		return err
	}
	md.m[k] = append(md.m[k], v)
	return nil
}

// Remove deletes key and its whole value sequence. Removing an absent key
// is a no-op. The key is lower-cased but not checked for legality: an
// illegal key cannot have been stored, so it simply isn't there.
func (md *MD) Remove(key string) {
	delete(md.m, lowerASCII(key))
}

// Get returns a copy of key's value sequence, or nil when the key is
// absent. Like Remove, it lower-cases the key without a legality check;
// an illegal key reads as absent rather than failing.
func (md *MD) Get(key string) []Value {
	vs, ok := md.m[lowerASCII(key)]
	if !ok {
		return nil
	}
	out := make([]Value, len(vs))
	copy(out, vs)
	return out
}

// Map projects the container down to one representative value per key: the
// first value inserted, not the most recent. Multi-valued keys lose their
// tail in this view.
func (md *MD) Map() map[string]Value {
	out := make(map[string]Value, len(md.m))
	for k, vs := range md.m {
		out[k] = vs[0]
	}
	return out
}

// Len returns the number of distinct keys.
func (md *MD) Len() int { return len(md.m) }

// Keys returns the stored keys in sorted order.
func (md *MD) Keys() []string {
	keys := make([]string, 0, len(md.m))
	for k := range md.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy sharing no mutable state with the receiver.
// Mutating the clone never affects the original and vice versa.
func (md *MD) Clone() *MD {
	out := &MD{oracle: md.oracle, m: make(map[string][]Value, len(md.m))}
	for k, vs := range md.m {
		cp := make([]Value, len(vs))
		for i, v := range vs {
			cp[i] = v.clone()
		}
		out.m[k] = cp
	}
	return out
}

// ToWire exposes the raw key to value-sequence mapping for the transport
// layer to serialize. The returned map is the container's live state, not a
// copy: it is intended for internal consumption only, and callers must not
// hold it across mutations of the MD.
func (md *MD) ToWire() Wire {
	return md.m
}

// FromWire bulk-constructs a container from a mapping that is assumed
// already normalized and validated, e.g. one received off the wire from a
// conforming peer. Each value sequence is deep-copied; no re-validation is
// performed. A nil or empty input yields an empty container.
func FromWire(w Wire) *MD {
	md := New()
	for k, vs := range w {
		if len(vs) == 0 {
			continue
		}
		cp := make([]Value, len(vs))
		for i, v := range vs {
			cp[i] = v.clone()
		}
		md.m[k] = cp
	}
	return md
}

// normalizeKey lower-cases key with ASCII case folding and rejects it when
// the oracle deems the result illegal.
func (md *MD) normalizeKey(key string) (string, error) {
	k := lowerASCII(key)
	if !md.oracle.KeyIsLegal(k) {
		return "", &KeyError{Key: key}
	}
	return k, nil
}

// lowerASCII folds A-Z to a-z and leaves every other byte alone. Non-ASCII
// bytes pass through unchanged and get rejected by the legality check.
func lowerASCII(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// validate checks v against the binary classification of the normalized key.
func (md *MD) validate(key string, v Value) error {
	if md.oracle.KeyIsBinary(key) {
		if !v.IsBinary() {
			return errBinaryValueRequired(key)
		}
		return nil
	}
	if v.IsBinary() {
		return errStringValueRequired(key)
	}
	if !md.oracle.NonBinaryValueIsLegal(v.Text()) {
		return errIllegalValueContent(key, v.Text())
	}
	return nil
}
