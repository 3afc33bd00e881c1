package y86

import (
	"encoding/binary"
)

const (
	DefaultCapacity = 100000 // Default memory image size in bytes.
	StackSymbol     = "Stack"
	StackAddress    = 0x100 // Default address bound to StackSymbol.
)

// Image is a fixed capacity, byte addressable memory array.
type Image struct {
	Data []byte
}

// NewImage creates a zeroed image of capacity bytes.
func NewImage(capacity int) *Image {
	return &Image{Data: make([]byte, capacity)}
}

// Capacity returns the size of the image in bytes.
func (img *Image) Capacity() int {
	return len(img.Data)
}

// Write copies data into the image at addr.
func (img *Image) Write(addr int, data []byte) (err error) {
	if addr < 0 || addr+len(data) > len(img.Data) {
		err = ErrImageOverflow
		return
	}

	copy(img.Data[addr:], data)

	return
}

// PutUint32 overwrites the four bytes at addr with a little-endian value.
func (img *Image) PutUint32(addr int, value uint32) (err error) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], value)
	return img.Write(addr, buf[:])
}

// Uint32 reads the little-endian value at addr.
func (img *Image) Uint32(addr int) (value uint32, ok bool) {
	if addr < 0 || addr+4 > len(img.Data) {
		return
	}

	return binary.LittleEndian.Uint32(img.Data[addr:]), true
}

// Extent is the span of bytes emitted by a single source line.
type Extent struct {
	LineNo int      // Source line number.
	Start  int      // First byte address.
	End    int      // One past the last byte address.
	Tokens []string // Source tokens of the line.
}

// Len returns the number of bytes in the extent.
func (ext Extent) Len() int {
	return ext.End - ext.Start
}

// Contains reports whether addr lies within the extent.
func (ext Extent) Contains(addr int) bool {
	return addr >= ext.Start && addr < ext.End
}

// Directive reports whether the extent was emitted by a directive rather than an instruction.
func (ext Extent) Directive() bool {
	cl, err := classify(ext.Tokens)
	return err == nil && cl.kind == LINE_DIRECTIVE
}
