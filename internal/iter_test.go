package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterChunks(t *testing.T) {
	assert := assert.New(t)

	data := []byte{0, 1, 2, 3, 4, 5, 6}

	var offsets []int
	var chunks [][]byte
	for offset, chunk := range IterChunks(data, 3) {
		offsets = append(offsets, offset)
		chunks = append(chunks, chunk)
	}

	assert.Equal([]int{0, 3, 6}, offsets)
	assert.Equal([][]byte{{0, 1, 2}, {3, 4, 5}, {6}}, chunks)
}

func TestIterChunks_Empty(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for range IterChunks([]byte{}, 16) {
		count++
	}
	assert.Equal(0, count)
}
