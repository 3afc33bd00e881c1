package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/y86asm/y86"
)

func writeSource(t *testing.T, name string, lines ...string) string {
	filename := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(filename, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return filename
}

func execute(args []string, stdin string) (stdout string, err error) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err = cmd.Execute()
	stdout = out.String()
	return
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	src := writeSource(t, "prog.ys",
		"loop: irmovl $5,%eax",
		"jmp loop",
	)
	bin := filepath.Join(t.TempDir(), "prog.bin")

	stdout, err := execute([]string{"-o", bin, src}, "")
	assert.NoError(err)
	assert.Equal(strings.Join([]string{
		"FILE:",
		"0x0\t30 f0 05 00 00 00",
		"0x6\t70 00 00 00 00",
		"",
		"MEMORY:",
		"0x0\t30 f0 05 00 00 00 70 00 00 00 00",
		"",
	}, "\n"), stdout)

	data, err := os.ReadFile(bin)
	assert.NoError(err)
	assert.Equal([]byte{0x30, 0xf0, 0x05, 0, 0, 0, 0x70, 0, 0, 0, 0}, data)
}

func TestRun_Prompt(t *testing.T) {
	assert := assert.New(t)

	src := writeSource(t, "prog.ys", "halt")

	stdout, err := execute(nil, src+"\n")
	assert.NoError(err)
	assert.True(strings.HasPrefix(stdout, "File to assemble >> \nFILE:\n0x0\t00\n"))

	_, err = execute(nil, "")
	assert.Error(err)
}

func TestRun_Config(t *testing.T) {
	assert := assert.New(t)

	src := writeSource(t, "prog.ys", "irmovl Stack, %esp", "irmovl io, %eax")
	cfg := writeSource(t, "y86asm.star", `symbols = {"Stack": 0x800}`)

	stdout, err := execute([]string{"-c", cfg, "-D", "io=0x20", "-s", "-l", src}, "")
	assert.NoError(err)
	assert.Contains(stdout, "SYMBOLS:\n0x20\tio\n0x800\tStack\n")
	assert.Contains(stdout, "0x0\t30 f4 00 08 00 00\n")
	assert.Contains(stdout, "# irmovl $32, %eax")
}

func TestRun_Errors(t *testing.T) {
	assert := assert.New(t)

	src := writeSource(t, "bad.ys", "jmp missing", "call other")

	_, err := execute([]string{src}, "")
	assert.True(errors.Is(err, y86.ErrSymbolMissing("missing")))
	assert.False(errors.Is(err, y86.ErrSymbolMissing("other")))

	_, err = execute([]string{"-k", src}, "")
	assert.True(errors.Is(err, y86.ErrSymbolMissing("other")))

	_, err = execute([]string{"-D", "oops", src}, "")
	assert.Error(err)

	_, err = execute([]string{filepath.Join(t.TempDir(), "absent.ys")}, "")
	assert.True(errors.Is(err, os.ErrNotExist))

	_, err = execute([]string{"a.ys", "b.ys"}, "")
	assert.Error(err)
}
