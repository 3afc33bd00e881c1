package y86

import (
	"iter"
	"maps"
	"slices"
)

// Family is the operand layout of an instruction.
type Family int

//go:generate go tool stringer -linecomment -type=Family
const (
	FAMILY_NONE  = Family(0) // none
	FAMILY_RR    = Family(1) // rr
	FAMILY_IRMOV = Family(2) // irmov
	FAMILY_RMMOV = Family(3) // rmmov
	FAMILY_MRMOV = Family(4) // mrmov
	FAMILY_JUMP  = Family(5) // jump
	FAMILY_STACK = Family(6) // stack
)

// Size returns the encoded length in bytes of an instruction of the family.
func (fam Family) Size() int {
	switch fam {
	case FAMILY_RR, FAMILY_STACK:
		return 2
	case FAMILY_IRMOV, FAMILY_RMMOV, FAMILY_MRMOV:
		return 6
	case FAMILY_JUMP:
		return 5
	}
	return 1
}

// Operands returns the number of operands the family takes.
func (fam Family) Operands() int {
	switch fam {
	case FAMILY_RR, FAMILY_IRMOV, FAMILY_RMMOV, FAMILY_MRMOV:
		return 2
	case FAMILY_JUMP, FAMILY_STACK:
		return 1
	}
	return 0
}

// Register is a 4-bit register code.
type Register byte

const (
	REG_EAX  = Register(0x0)
	REG_ECX  = Register(0x1)
	REG_EDX  = Register(0x2)
	REG_EBX  = Register(0x3)
	REG_ESP  = Register(0x4)
	REG_EBP  = Register(0x5)
	REG_ESI  = Register(0x6)
	REG_EDI  = Register(0x7)
	REG_E8   = Register(0x8)
	REG_E9   = Register(0x9)
	REG_E10  = Register(0xa)
	REG_E11  = Register(0xb)
	REG_E12  = Register(0xc)
	REG_E13  = Register(0xd)
	REG_E14  = Register(0xe)
	REG_NONE = Register(0xf) // No register, or immediate source.
)

// registerMap maps register names to register codes.
var registerMap = map[string]Register{
	"%eax": REG_EAX,
	"%ecx": REG_ECX,
	"%edx": REG_EDX,
	"%ebx": REG_EBX,
	"%esp": REG_ESP,
	"%ebp": REG_EBP,
	"%esi": REG_ESI,
	"%edi": REG_EDI,
	"%e8":  REG_E8,
	"%e9":  REG_E9,
	"%e10": REG_E10,
	"%e11": REG_E11,
	"%e12": REG_E12,
	"%e13": REG_E13,
	"%e14": REG_E14,
}

// LookupRegister returns the code of a register name.
func LookupRegister(name string) (reg Register, ok bool) {
	reg, ok = registerMap[name]
	return
}

// String returns the register name, or "" for REG_NONE.
func (reg Register) String() string {
	for name, code := range registerMap {
		if code == reg {
			return name
		}
	}
	return ""
}

// Mnemonic is an entry of the instruction table.
type Mnemonic struct {
	Name   string
	Opcode byte
	Family Family
}

// Instruction tables, one per family.
var (
	noneOps = map[string]byte{
		"halt": 0x00,
		"nop":  0x10,
		"ret":  0x90,
	}
	rrOps = map[string]byte{
		"rrmovl": 0x20,
		"cmovle": 0x21,
		"cmovl":  0x22,
		"cmove":  0x23,
		"cmovne": 0x24,
		"cmovge": 0x25,
		"cmovg":  0x26,
		"addl":   0x60,
		"subl":   0x61,
		"andl":   0x62,
		"xorl":   0x63,
	}
	irmovOps = map[string]byte{
		"irmovl": 0x30,
	}
	rmmovOps = map[string]byte{
		"rmmovl": 0x40,
	}
	mrmovOps = map[string]byte{
		"mrmovl": 0x50,
	}
	jumpOps = map[string]byte{
		"jmp":  0x70,
		"jle":  0x71,
		"jl":   0x72,
		"je":   0x73,
		"jne":  0x74,
		"jge":  0x75,
		"jg":   0x76,
		"call": 0x80,
	}
	stackOps = map[string]byte{
		"pushl": 0xa0,
		"popl":  0xb0,
	}
)

var (
	mnemonicMap = map[string]Mnemonic{}
	opcodeMap   = map[byte]Mnemonic{}
)

func init() {
	families := []struct {
		family Family
		ops    map[string]byte
	}{
		{FAMILY_NONE, noneOps},
		{FAMILY_RR, rrOps},
		{FAMILY_IRMOV, irmovOps},
		{FAMILY_RMMOV, rmmovOps},
		{FAMILY_MRMOV, mrmovOps},
		{FAMILY_JUMP, jumpOps},
		{FAMILY_STACK, stackOps},
	}
	for _, fam := range families {
		for name, opcode := range fam.ops {
			mn := Mnemonic{Name: name, Opcode: opcode, Family: fam.family}
			mnemonicMap[name] = mn
			opcodeMap[opcode] = mn
		}
	}
}

// LookupMnemonic returns the instruction table entry for a mnemonic.
func LookupMnemonic(name string) (mn Mnemonic, ok bool) {
	mn, ok = mnemonicMap[name]
	return
}

// MnemonicOf returns the instruction table entry for an opcode byte.
func MnemonicOf(opcode byte) (mn Mnemonic, ok bool) {
	mn, ok = opcodeMap[opcode]
	return
}

// Mnemonics iterates over all instruction table entries, ordered by opcode.
func Mnemonics() iter.Seq[Mnemonic] {
	return func(yield func(Mnemonic) bool) {
		for _, opcode := range slices.Sorted(maps.Keys(opcodeMap)) {
			if !yield(opcodeMap[opcode]) {
				return
			}
		}
	}
}
