package y86

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/y86asm/internal"
)

// Program is the result of a successful assembly.
type Program struct {
	Image   *Image            // Memory image.
	Size    int               // Final location counter.
	Extents []Extent          // Emitted spans, in emission order.
	Symbols map[string]uint32 // Label bindings.
}

// Bytes returns the image contents below the final location counter.
func (prog *Program) Bytes() []byte {
	return prog.Image.Data[:prog.Size]
}

// Extent returns the most recently emitted extent covering addr.
func (prog *Program) Extent(addr int) (ext Extent, ok bool) {
	for n := len(prog.Extents) - 1; n >= 0; n-- {
		if prog.Extents[n].Contains(addr) {
			return prog.Extents[n], true
		}
	}

	return
}

// Rows iterates over Bytes() in rows of width bytes, with the address of each row.
func (prog *Program) Rows(width int) iter.Seq2[int, []byte] {
	return internal.IterChunks(prog.Bytes(), width)
}

// Labels returns the symbol names ordered by address, then by name.
func (prog *Program) Labels() []string {
	names := slices.Collect(maps.Keys(prog.Symbols))
	slices.SortFunc(names, func(a, b string) int {
		return cmp.Or(cmp.Compare(prog.Symbols[a], prog.Symbols[b]), cmp.Compare(a, b))
	})
	return names
}
