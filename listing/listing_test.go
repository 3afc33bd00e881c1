package listing

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/y86asm/y86"
)

func assemble(t *testing.T, program ...string) *y86.Program {
	asm := &y86.Assembler{}
	prog, err := asm.Assemble(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func TestFile(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		"loop: irmovl $5,%eax",
		"jmp loop",
		".byte 0x41",
	)

	out := &bytes.Buffer{}
	assert.NoError(File(out, prog))
	assert.Equal(strings.Join([]string{
		"FILE:",
		"0x0\t30 f0 05 00 00 00",
		"0x6\t70 00 00 00 00",
		"0xb\t41",
		"",
	}, "\n"), out.String())
}

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		".quad 0x0706050403020100",
		".quad 0x0f0e0d0c0b0a0908",
		".byte 0x10",
		".byte 0x11",
	)

	out := &bytes.Buffer{}
	assert.NoError(Memory(out, prog))
	assert.Equal(strings.Join([]string{
		"MEMORY:",
		"0x0\t00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f",
		"0x10\t10 11",
		"",
	}, "\n"), out.String())
}

func TestSource(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		"main: irmovl $1, %eax",
		"  pushl %eax",
		"  .byte 0x10",
	)

	out := &bytes.Buffer{}
	assert.NoError(Source(out, prog))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Equal(3, len(lines))
	assert.True(strings.HasPrefix(lines[0], "0x0000  30 f0 01 00 00 00"))
	assert.True(strings.HasSuffix(lines[0], "# irmovl $1, %eax"))
	assert.Contains(lines[0], "main: irmovl $1 %eax")
	assert.True(strings.HasSuffix(lines[1], "# pushl %eax"))
	assert.Equal(fmt.Sprintf("0x0008  %-26v.byte 0x10", "10"), lines[2])
}

func TestSource_Labels(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		".L1: nop",
		"data: .byte 0x10",
		".L2: jmp .L1",
	)

	out := &bytes.Buffer{}
	assert.NoError(Source(out, prog))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Equal(3, len(lines))
	assert.True(strings.HasSuffix(lines[0], "# nop"))
	assert.Equal(fmt.Sprintf("0x0001  %-26vdata: .byte 0x10", "10"), lines[1])
	assert.True(strings.HasSuffix(lines[2], "# jmp 0x0"))
}

func TestSymbols(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		"start: nop",
		"end: halt",
	)

	out := &bytes.Buffer{}
	assert.NoError(Symbols(out, prog))
	assert.Equal("SYMBOLS:\n0x0\tstart\n0x1\tend\n0x100\tStack\n", out.String())
}
