package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/net/http2/hpack"

	"github.com/nmxmxh/wirecall/pkg/metadata"
)

func TestCodecRoundTrip(t *testing.T) {
	md := metadata.New()
	require.NoError(t, md.Set("x-request-id", metadata.String("abc-123")))
	require.NoError(t, md.Add("x-tag", metadata.String("one")))
	require.NoError(t, md.Add("x-tag", metadata.String("two")))
	require.NoError(t, md.Set("trace-bin", metadata.Binary([]byte{0x00, 0x01, 0xfe, 0xff})))

	c := NewCodec(zap.NewNop())
	block, err := c.Encode(md)
	require.NoError(t, err)
	require.NotEmpty(t, block)

	got, err := c.Decode(block)
	require.NoError(t, err)
	assert.Equal(t, md.Keys(), got.Keys())
	for _, k := range md.Keys() {
		assert.Equal(t, md.Get(k), got.Get(k), "key %q", k)
	}
}

func TestCodecRoundTripEmpty(t *testing.T) {
	c := NewCodec(nil)
	block, err := c.Encode(metadata.New())
	require.NoError(t, err)
	assert.Empty(t, block)

	got, err := c.Decode(block)
	require.NoError(t, err)
	assert.Zero(t, got.Len())
}

func TestCodecSequentialBlocks(t *testing.T) {
	// The encoder and decoder dynamic tables stay in sync across blocks,
	// as they would over one connection direction.
	c := NewCodec(zap.NewNop())
	for i := 0; i < 3; i++ {
		md := metadata.New()
		require.NoError(t, md.Set("x-request-id", metadata.String("req")))
		require.NoError(t, md.Set("x-attempt", metadata.String(string(rune('a'+i)))))

		block, err := c.Encode(md)
		require.NoError(t, err)
		got, err := c.Decode(block)
		require.NoError(t, err)
		assert.Equal(t, md.Get("x-attempt"), got.Get("x-attempt"))
	}
}

func TestDecodeAcceptsPaddedBase64(t *testing.T) {
	// A peer that pads its base64 still decodes to the same bytes.
	var buf []byte
	enc := hpack.NewEncoder(captureWriter{&buf})
	require.NoError(t, enc.WriteField(hpack.HeaderField{Name: "trace-bin", Value: "aGk="}))

	got, err := NewCodec(nil).Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, []metadata.Value{metadata.Binary([]byte("hi"))}, got.Get("trace-bin"))
}

func TestDecodeRejectsBadBase64(t *testing.T) {
	var buf []byte
	enc := hpack.NewEncoder(captureWriter{&buf})
	require.NoError(t, enc.WriteField(hpack.HeaderField{Name: "trace-bin", Value: "!!not base64!!"}))

	c := NewCodec(nil)
	_, err := c.Decode(buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trace-bin")
}

func TestDecodeRejectsTruncatedBlock(t *testing.T) {
	c := NewCodec(nil)
	md := metadata.New()
	require.NoError(t, md.Set("x-request-id", metadata.String("abcdefghij")))
	block, err := c.Encode(md)
	require.NoError(t, err)

	_, err = NewCodec(nil).Decode(block[:len(block)-1])
	assert.Error(t, err)
}

// captureWriter collects the encoder output; hpack.NewEncoder wants an
// io.Writer but tests want the bytes back.
type captureWriter struct{ buf *[]byte }

func (w captureWriter) Write(p []byte) (int, error) {
	*w.buf = append(*w.buf, p...)
	return len(p), nil
}
