// Package transport serializes call metadata onto HTTP/2-style header
// blocks and parses the peer's blocks back into containers. It is the only
// code that touches the raw Wire representation.
package transport

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/net/http2/hpack"

	"github.com/nmxmxh/wirecall/pkg/metadata"
)

// headerTableSize is the HPACK dynamic table size used for both directions.
const headerTableSize = 4096

// Codec encodes and decodes metadata header blocks. A Codec carries HPACK
// dynamic-table state, so each connection direction needs its own instance;
// a Codec must not be shared across goroutines.
type Codec struct {
	log    *zap.Logger
	oracle metadata.Oracle

	encBuf bytes.Buffer
	enc    *hpack.Encoder
	dec    *hpack.Decoder
}

// NewCodec returns a codec classifying binary keys with DefaultOracle.
// A nil logger disables codec logging.
func NewCodec(log *zap.Logger) *Codec {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Codec{log: log, oracle: metadata.DefaultOracle}
	c.enc = hpack.NewEncoder(&c.encBuf)
	c.dec = hpack.NewDecoder(headerTableSize, nil)
	return c
}

// Encode serializes md into an HPACK header block. Keys are emitted in
// sorted order; values under one key keep their insertion order, repeated
// as one header field each. Binary values are base64-encoded without
// padding; string values travel verbatim, which is safe because the
// container validated them on insert.
func (c *Codec) Encode(md *metadata.MD) ([]byte, error) {
	c.encBuf.Reset()
	wire := md.ToWire()
	for _, k := range md.Keys() {
		binary := c.oracle.KeyIsBinary(k)
		for _, v := range wire[k] {
			hf := hpack.HeaderField{Name: k}
			if binary {
				hf.Value = base64.RawStdEncoding.EncodeToString(v.Bytes())
			} else {
				hf.Value = v.Text()
			}
			if err := c.enc.WriteField(hf); err != nil {
				return nil, fmt.Errorf("transport: encode field %q: %w", k, err)
			}
		}
	}
	block := make([]byte, c.encBuf.Len())
	copy(block, c.encBuf.Bytes())
	c.log.Debug("encoded metadata block",
		zap.Int("keys", md.Len()),
		zap.Int("bytes", len(block)))
	return block, nil
}

// Decode parses an HPACK header block into a fresh container. The decoder
// keeps its dynamic table across calls, so blocks from one peer must be fed
// in arrival order. Fields are bulk-imported without re-validation: a
// conforming peer validated them on its side of the wire. Binary fields are
// base64-decoded, accepting both padded and unpadded input.
func (c *Codec) Decode(block []byte) (*metadata.MD, error) {
	wire := metadata.Wire{}
	var decErr error
	c.dec.SetEmitFunc(func(f hpack.HeaderField) {
		if decErr != nil {
			return
		}
		if c.oracle.KeyIsBinary(f.Name) {
			b, err := decodeBinValue(f.Value)
			if err != nil {
				decErr = fmt.Errorf("transport: decode field %q: %w", f.Name, err)
				return
			}
			wire[f.Name] = append(wire[f.Name], metadata.Binary(b))
			return
		}
		wire[f.Name] = append(wire[f.Name], metadata.String(f.Value))
	})
	if _, err := c.dec.Write(block); err != nil {
		return nil, fmt.Errorf("transport: decode block: %w", err)
	}
	if err := c.dec.Close(); err != nil {
		return nil, fmt.Errorf("transport: decode block: %w", err)
	}
	if decErr != nil {
		return nil, decErr
	}
	md := metadata.FromWire(wire)
	c.log.Debug("decoded metadata block",
		zap.Int("keys", md.Len()),
		zap.Int("bytes", len(block)))
	return md, nil
}

// decodeBinValue accepts padded and unpadded base64, matching what peers
// of either persuasion put on the wire.
func decodeBinValue(v string) ([]byte, error) {
	if len(v)%4 == 0 {
		return base64.StdEncoding.DecodeString(v)
	}
	return base64.RawStdEncoding.DecodeString(v)
}
