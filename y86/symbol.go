package y86

import (
	"maps"
)

// SymbolTable maps label names to addresses.
type SymbolTable struct {
	Address map[string]uint32

	predefined map[string]bool
}

// NewSymbolTable creates a symbol table holding the predefined symbols.
func NewSymbolTable(predefine map[string]uint32) (st *SymbolTable) {
	st = &SymbolTable{
		Address:    maps.Clone(predefine),
		predefined: make(map[string]bool, len(predefine)),
	}
	if st.Address == nil {
		st.Address = make(map[string]uint32)
	}
	for name := range predefine {
		st.predefined[name] = true
	}
	return
}

// Define binds a label to an address.
//
// A label may replace a predefined symbol once; defining the same label
// twice in the source is ErrLabelDuplicate.
func (st *SymbolTable) Define(name string, addr uint32) (err error) {
	_, ok := st.Address[name]
	if ok && !st.predefined[name] {
		err = ErrLabelDuplicate
		return
	}

	delete(st.predefined, name)
	st.Address[name] = addr

	return
}

// Lookup returns the address bound to a label.
func (st *SymbolTable) Lookup(name string) (addr uint32, ok bool) {
	addr, ok = st.Address[name]
	return
}

// Backpatch is a 4-byte placeholder awaiting the address of a symbol.
type Backpatch struct {
	Symbol  string // Symbol to resolve.
	Address int    // Image address of the placeholder.
	LineNo  int    // Source line of the reference.
	Line    string // Source text of the reference.
}

// Queue is an ordered list of backpatches.
type Queue []Backpatch

// Push appends a backpatch to the queue.
func (q *Queue) Push(bp Backpatch) {
	*q = append(*q, bp)
}
