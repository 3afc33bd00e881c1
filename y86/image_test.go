package y86

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImage(t *testing.T) {
	assert := assert.New(t)

	img := NewImage(16)
	assert.Equal(16, img.Capacity())

	assert.NoError(img.Write(0, []byte{1, 2, 3}))
	assert.NoError(img.PutUint32(12, 0xaabbccdd))
	assert.Equal([]byte{1, 2, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xdd, 0xcc, 0xbb, 0xaa}, img.Data)

	value, ok := img.Uint32(12)
	assert.True(ok)
	assert.Equal(uint32(0xaabbccdd), value)

	_, ok = img.Uint32(13)
	assert.False(ok)

	assert.ErrorIs(img.Write(14, []byte{1, 2, 3}), ErrImageOverflow)
	assert.ErrorIs(img.Write(-1, []byte{1}), ErrImageOverflow)
	assert.ErrorIs(img.PutUint32(13, 0), ErrImageOverflow)
}

func TestExtent(t *testing.T) {
	assert := assert.New(t)

	ext := Extent{Start: 4, End: 10}
	assert.Equal(6, ext.Len())
	assert.False(ext.Contains(3))
	assert.True(ext.Contains(4))
	assert.True(ext.Contains(9))
	assert.False(ext.Contains(10))
}

func TestExtent_Directive(t *testing.T) {
	assert := assert.New(t)

	for tokens, expected := range map[string]bool{
		"nop":              false,
		".L1: nop":         false,
		".L1: .L2: rrmovl": false,
		".byte 1":          true,
		"data: .long 4":    true,
		"bogus":            false,
	} {
		ext := Extent{Tokens: strings.Fields(tokens)}
		assert.Equal(expected, ext.Directive(), tokens)
	}
}
