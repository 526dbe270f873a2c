package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueKinds(t *testing.T) {
	s := String("hello")
	assert.Equal(t, KindString, s.Kind())
	assert.False(t, s.IsBinary())
	assert.Equal(t, "hello", s.Text())
	assert.Nil(t, s.Bytes())

	b := Binary([]byte{0x01, 0x02})
	assert.Equal(t, KindBinary, b.Kind())
	assert.True(t, b.IsBinary())
	assert.Equal(t, []byte{0x01, 0x02}, b.Bytes())
	assert.Empty(t, b.Text())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "hello", String("hello").String())
	assert.Equal(t, "binary(3 bytes)", Binary([]byte{1, 2, 3}).String())
}

func TestZeroValueIsEmptyString(t *testing.T) {
	var v Value
	assert.Equal(t, KindString, v.Kind())
	assert.Empty(t, v.Text())

	// The zero value is storable under any non-binary key.
	md := New()
	require.NoError(t, md.Set("x-custom", v))
}

func TestValueCloneDetachesBinary(t *testing.T) {
	src := []byte{1, 2, 3}
	v := Binary(src)
	cp := v.clone()
	src[0] = 0xff
	assert.Equal(t, []byte{0xff, 2, 3}, v.Bytes())
	assert.Equal(t, []byte{1, 2, 3}, cp.Bytes())
}
