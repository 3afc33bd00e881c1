// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package internal

import (
	"iter"
	"slices"
)

// IterChunks yields consecutive sub-slices of at most size elements,
// along with the offset of each sub-slice within s.
func IterChunks[S ~[]E, E any](s S, size int) iter.Seq2[int, S] {
	return func(yield func(int, S) bool) {
		offset := 0
		for chunk := range slices.Chunk(s, size) {
			if !yield(offset, chunk) {
				return // Stop if the consumer stops
			}
			offset += len(chunk)
		}
	}
}
