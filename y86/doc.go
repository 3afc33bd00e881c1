// Package y86 implements the assembler for the Y86 teaching instruction set.
//
// Source is read one line at a time. Each line may carry labels, followed by
// a single directive or instruction. Bytes are written little-endian into a
// fixed capacity memory Image at the location counter. References to labels
// are emitted as zero placeholders and patched once the whole source has been
// seen, so labels may be used before they are defined.
package y86
