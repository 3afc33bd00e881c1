// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package y86

import (
	"encoding/binary"
	"errors"
	"io"
	"log"
	"strconv"
	"strings"
)

// Assembler is a single pass assembler for the Y86 instruction set.
type Assembler struct {
	Verbose       bool // If set, verbosely logs the assembler actions.
	CollectErrors bool // If set, report every unresolved symbol instead of the first.
	Capacity      int  // Memory image size; zero selects DefaultCapacity.

	Pc      int          // Location counter.
	Image   *Image       // Memory image being written.
	Symbols *SymbolTable // Label bindings.
	Patches Queue        // Placeholders awaiting symbol resolution.
	Extents []Extent     // Spans of emitted bytes, in emission order.

	predefine map[string]uint32
}

// Predefine defines a symbol before assembly, or redefines an existing predefine.
func (asm *Assembler) Predefine(name string, addr uint32) {
	if asm.predefine == nil {
		asm.predefine = map[string]uint32{StackSymbol: StackAddress}
	}
	asm.predefine[name] = addr
}

// reset discards all state from a previous run.
func (asm *Assembler) reset() {
	if asm.predefine == nil {
		asm.predefine = map[string]uint32{StackSymbol: StackAddress}
	}

	capacity := asm.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	asm.Pc = 0
	asm.Image = NewImage(capacity)
	asm.Symbols = NewSymbolTable(asm.predefine)
	asm.Patches = nil
	asm.Extents = nil
}

// Assemble reads source text and assembles it into a Program.
func (asm *Assembler) Assemble(input io.Reader) (prog *Program, err error) {
	lines, err := ReadLines(input)
	if err != nil {
		return
	}

	return asm.AssembleLines(lines)
}

// AssembleLines assembles tokenized source lines into a Program.
//
// No Program is returned if any line fails to encode, or if any
// symbolic operand remains unresolved.
func (asm *Assembler) AssembleLines(lines []SourceLine) (prog *Program, err error) {
	asm.reset()

	for _, line := range lines {
		if asm.Verbose {
			log.Printf("%v: %v\n", line.LineNo, line.Text)
		}

		err = asm.encodeLine(line)
		if err != nil {
			err = &ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
			return
		}
	}

	err = asm.resolve()
	if err != nil {
		return
	}

	prog = &Program{
		Image:   asm.Image,
		Size:    asm.Pc,
		Extents: asm.Extents,
		Symbols: asm.Symbols.Address,
	}

	return
}

// lineKind is the classification of a line after its labels.
type lineKind int

const (
	LINE_EMPTY lineKind = iota
	LINE_DIRECTIVE
	LINE_INSTRUCTION
)

// classified is the result of classifying a line's tokens.
type classified struct {
	labels    []string
	kind      lineKind
	directive string
	mnemonic  Mnemonic
	operands  []string
}

// labelOf returns the label a token defines, if it is a label definition.
func labelOf(token string) (label string, ok bool) {
	label, ok = strings.CutSuffix(token, ":")
	if !ok || len(label) == 0 {
		return "", false
	}
	if label[0] >= '0' && label[0] <= '9' {
		return "", false
	}
	if _, is_mnemonic := mnemonicMap[label]; is_mnemonic {
		return "", false
	}
	return
}

// classify decides how the tokens of a line are interpreted.
func classify(tokens []string) (cl classified, err error) {
	for len(tokens) > 0 {
		if tokens[0] == ":" {
			err = ErrLabelInvalid
			return
		}
		label, ok := labelOf(tokens[0])
		if !ok {
			break
		}
		cl.labels = append(cl.labels, label)
		tokens = tokens[1:]
	}

	if len(tokens) == 0 {
		cl.kind = LINE_EMPTY
		return
	}

	cl.operands = tokens[1:]

	if strings.HasPrefix(tokens[0], ".") {
		cl.kind = LINE_DIRECTIVE
		cl.directive = tokens[0]
		return
	}

	mn, ok := mnemonicMap[tokens[0]]
	if !ok {
		err = ErrTokenUnrecognized(tokens[0])
		return
	}

	cl.kind = LINE_INSTRUCTION
	cl.mnemonic = mn

	return
}

// encodeLine encodes a single line at the location counter.
func (asm *Assembler) encodeLine(line SourceLine) (err error) {
	cl, err := classify(line.Tokens)
	if err != nil {
		return
	}

	for _, label := range cl.labels {
		if asm.Verbose {
			log.Printf("%v: label %v = 0x%x\n", line.LineNo, label, asm.Pc)
		}
		err = asm.Symbols.Define(label, uint32(asm.Pc))
		if err != nil {
			return
		}
	}

	var codes []byte

	switch cl.kind {
	case LINE_EMPTY:
		return
	case LINE_DIRECTIVE:
		codes, err = asm.encodeDirective(cl.directive, cl.operands)
	case LINE_INSTRUCTION:
		codes, err = asm.encodeInstruction(line, cl.mnemonic, cl.operands)
	}
	if err != nil {
		return
	}

	if len(codes) == 0 {
		return
	}

	err = asm.Image.Write(asm.Pc, codes)
	if err != nil {
		return
	}

	asm.Extents = append(asm.Extents, Extent{
		LineNo: line.LineNo,
		Start:  asm.Pc,
		End:    asm.Pc + len(codes),
		Tokens: line.Tokens,
	})
	asm.Pc += len(codes)

	return
}

// parseNumber parses a decimal or 0x prefixed hexadecimal literal.
// Negative values are returned in two's complement.
func parseNumber(word string) (value uint64, err error) {
	digits := word
	negative := false
	if strings.HasPrefix(digits, "-") {
		negative = true
		digits = digits[1:]
	}

	base := 10
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		base = 16
		digits = digits[2:]
	}

	value, err = strconv.ParseUint(digits, base, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if negative {
		value = -value
	}

	return
}

// setPc moves the location counter.
func (asm *Assembler) setPc(pc uint64) (err error) {
	if pc > uint64(asm.Image.Capacity()) {
		err = ErrImageOverflow
		return
	}

	asm.Pc = int(pc)

	return
}

// encodeDirective encodes a directive and its single numeric argument.
func (asm *Assembler) encodeDirective(directive string, args []string) (codes []byte, err error) {
	switch directive {
	case ".byte", ".word", ".long", ".quad", ".align", ".pos":
	default:
		err = ErrDirectiveInvalid
		return
	}

	if len(args) == 0 {
		err = ErrOpcodeValueMissing
		return
	}
	if len(args) > 1 {
		err = ErrOpcodeExtraArgs
		return
	}

	value, err := parseNumber(args[0])
	if err != nil {
		return
	}

	switch directive {
	case ".byte":
		codes = []byte{byte(value)}
	case ".word", ".long":
		codes = binary.LittleEndian.AppendUint32(codes, uint32(value))
	case ".quad":
		codes = binary.LittleEndian.AppendUint64(codes, value)
	case ".align":
		if value == 0 {
			err = ErrAlignZero
			return
		}
		pc := uint64(asm.Pc)
		err = asm.setPc(pc - (pc % value) + value)
	case ".pos":
		err = asm.setPc(value)
	}

	return
}

// register returns the code of a register operand.
func register(word string) (reg Register, err error) {
	reg, ok := registerMap[word]
	if !ok {
		err = ErrRegisterInvalid(word)
	}
	return
}

// address splits a D(R) operand. A bare name is a symbolic address, and
// leaves the base register nibble zero.
func address(word string) (disp uint32, base Register, symbolic bool, err error) {
	open := strings.IndexByte(word, '(')
	if open < 0 {
		if strings.ContainsRune(word, ')') {
			err = ErrAddressInvalid
			return
		}
		symbolic = true
		return
	}

	inner, ok := strings.CutSuffix(word[open+1:], ")")
	if !ok {
		err = ErrAddressInvalid
		return
	}

	base, err = register(inner)
	if err != nil {
		return
	}

	if open > 0 {
		var value uint64
		value, err = parseNumber(word[:open])
		if err != nil {
			return
		}
		disp = uint32(value)
	}

	return
}

// encodeInstruction encodes an instruction according to its family.
func (asm *Assembler) encodeInstruction(line SourceLine, mn Mnemonic, args []string) (codes []byte, err error) {
	need := mn.Family.Operands()
	if len(args) < need {
		err = ErrOpcodeMissing
		return
	}
	if len(args) > need {
		err = ErrOpcodeExtraArgs
		return
	}

	// Defer a placeholder at offset bytes into the instruction.
	patch := func(symbol string, offset int) {
		bp := Backpatch{
			Symbol:  symbol,
			Address: asm.Pc + offset,
			LineNo:  line.LineNo,
			Line:    line.Text,
		}
		if asm.Verbose {
			log.Printf("%v: patch 0x%x <- %v\n", line.LineNo, bp.Address, symbol)
		}
		asm.Patches.Push(bp)
	}

	codes = []byte{mn.Opcode}

	switch mn.Family {
	case FAMILY_NONE:
	case FAMILY_RR:
		var ra, rb Register
		ra, err = register(args[0])
		if err != nil {
			return
		}
		rb, err = register(args[1])
		if err != nil {
			return
		}
		codes = append(codes, byte(ra)<<4|byte(rb))
	case FAMILY_IRMOV:
		var rb Register
		rb, err = register(args[1])
		if err != nil {
			return
		}
		codes = append(codes, byte(REG_NONE)<<4|byte(rb))
		var value uint64
		if literal, ok := strings.CutPrefix(args[0], "$"); ok {
			value, err = parseNumber(literal)
			if err != nil {
				return
			}
		} else {
			patch(args[0], 2)
		}
		codes = binary.LittleEndian.AppendUint32(codes, uint32(value))
	case FAMILY_RMMOV, FAMILY_MRMOV:
		reg_arg, addr_arg := args[0], args[1]
		if mn.Family == FAMILY_MRMOV {
			reg_arg, addr_arg = args[1], args[0]
		}
		var ra, rb Register
		ra, err = register(reg_arg)
		if err != nil {
			return
		}
		var disp uint32
		var symbolic bool
		disp, rb, symbolic, err = address(addr_arg)
		if err != nil {
			return
		}
		if symbolic {
			patch(addr_arg, 2)
		}
		codes = append(codes, byte(ra)<<4|byte(rb))
		codes = binary.LittleEndian.AppendUint32(codes, disp)
	case FAMILY_JUMP:
		patch(args[0], 1)
		codes = binary.LittleEndian.AppendUint32(codes, 0)
	case FAMILY_STACK:
		var ra Register
		ra, err = register(args[0])
		if err != nil {
			return
		}
		codes = append(codes, byte(ra)<<4|byte(REG_NONE))
	}

	return
}

// resolve patches every queued placeholder with its symbol's address.
func (asm *Assembler) resolve() (err error) {
	var errs []error

	for _, bp := range asm.Patches {
		addr, ok := asm.Symbols.Lookup(bp.Symbol)
		if !ok {
			missing := &ErrSyntax{LineNo: bp.LineNo, Line: bp.Line, Err: ErrSymbolMissing(bp.Symbol)}
			if !asm.CollectErrors {
				err = missing
				return
			}
			errs = append(errs, missing)
			continue
		}

		err = asm.Image.PutUint32(bp.Address, addr)
		if err != nil {
			return
		}
	}

	err = errors.Join(errs...)

	return
}
