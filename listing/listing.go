// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package listing renders an assembled y86 Program as text.
package listing

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/y86asm/y86"
)

// RowWidth is the number of bytes per memory dump row.
const RowWidth = 16

// hexBytes formats bytes as space separated two digit hex.
func hexBytes(data []byte) string {
	words := make([]string, len(data))
	for n, b := range data {
		words[n] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(words, " ")
}

// File writes the bytes of each emitted line, one line per extent.
func File(w io.Writer, prog *y86.Program) error {
	out := bufio.NewWriter(w)

	fmt.Fprintln(out, "FILE:")
	for _, ext := range prog.Extents {
		fmt.Fprintf(out, "0x%x\t%v\n", ext.Start, hexBytes(prog.Image.Data[ext.Start:ext.End]))
	}

	return out.Flush()
}

// Memory writes the image below the final location counter, RowWidth bytes per row.
func Memory(w io.Writer, prog *y86.Program) error {
	out := bufio.NewWriter(w)

	fmt.Fprintln(out, "MEMORY:")
	for addr, row := range prog.Rows(RowWidth) {
		fmt.Fprintf(out, "0x%x\t%v\n", addr, hexBytes(row))
	}

	return out.Flush()
}

// Source writes each emitted line with its address, bytes, and source tokens.
// Instructions are annotated with their decoded form.
func Source(w io.Writer, prog *y86.Program) error {
	out := bufio.NewWriter(w)

	for _, ext := range prog.Extents {
		data := prog.Image.Data[ext.Start:ext.End]
		text := strings.Join(ext.Tokens, " ")

		inst, size, err := y86.Decode(data)
		if err == nil && size == len(data) && !ext.Directive() {
			text = fmt.Sprintf("%-32v # %v", text, inst)
		}

		fmt.Fprintf(out, "0x%04x  %-26v%v\n", ext.Start, hexBytes(data), text)
	}

	return out.Flush()
}

// Symbols writes the symbol table ordered by address.
func Symbols(w io.Writer, prog *y86.Program) error {
	out := bufio.NewWriter(w)

	fmt.Fprintln(out, "SYMBOLS:")
	for _, name := range prog.Labels() {
		fmt.Fprintf(out, "0x%x\t%v\n", prog.Symbols[name], name)
	}

	return out.Flush()
}
