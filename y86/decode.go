package y86

import (
	"encoding/binary"
	"fmt"
)

// Instruction is a decoded instruction.
type Instruction struct {
	Mnemonic
	RegA  Register // High nibble of the register byte.
	RegB  Register // Low nibble of the register byte.
	Value uint32   // Immediate, displacement or destination.
}

// Decode decodes the instruction at the start of data, returning it and its size.
func Decode(data []byte) (inst Instruction, size int, err error) {
	if len(data) == 0 {
		err = ErrOpcodeTruncated
		return
	}

	mn, ok := MnemonicOf(data[0])
	if !ok {
		err = ErrOpcodeDecode
		return
	}

	size = mn.Family.Size()
	if len(data) < size {
		err = ErrOpcodeTruncated
		size = 0
		return
	}

	inst = Instruction{Mnemonic: mn, RegA: REG_NONE, RegB: REG_NONE}

	switch mn.Family {
	case FAMILY_RR, FAMILY_STACK:
		inst.RegA = Register(data[1] >> 4)
		inst.RegB = Register(data[1] & 0xf)
	case FAMILY_IRMOV, FAMILY_RMMOV, FAMILY_MRMOV:
		inst.RegA = Register(data[1] >> 4)
		inst.RegB = Register(data[1] & 0xf)
		inst.Value = binary.LittleEndian.Uint32(data[2:])
	case FAMILY_JUMP:
		inst.Value = binary.LittleEndian.Uint32(data[1:])
	}

	return
}

// addressString formats a displacement and base register as D(R).
func addressString(disp uint32, base Register) string {
	if base == REG_NONE {
		return fmt.Sprintf("0x%x", disp)
	}
	return fmt.Sprintf("%d(%v)", int32(disp), base)
}

// String returns the assembly language representation of the instruction.
func (inst Instruction) String() (out string) {
	switch inst.Family {
	case FAMILY_NONE:
		out = inst.Name
	case FAMILY_RR:
		out = fmt.Sprintf("%v %v, %v", inst.Name, inst.RegA, inst.RegB)
	case FAMILY_IRMOV:
		out = fmt.Sprintf("%v $%d, %v", inst.Name, int32(inst.Value), inst.RegB)
	case FAMILY_RMMOV:
		out = fmt.Sprintf("%v %v, %v", inst.Name, inst.RegA, addressString(inst.Value, inst.RegB))
	case FAMILY_MRMOV:
		out = fmt.Sprintf("%v %v, %v", inst.Name, addressString(inst.Value, inst.RegB), inst.RegA)
	case FAMILY_JUMP:
		out = fmt.Sprintf("%v 0x%x", inst.Name, inst.Value)
	case FAMILY_STACK:
		out = fmt.Sprintf("%v %v", inst.Name, inst.RegA)
	}
	return
}
