package y86

import (
	"errors"

	"github.com/ezrec/y86asm/translate"
)

var f = translate.From

var (
	// Directive errors
	ErrDirectiveInvalid = errors.New(f("directive invalid"))
	ErrAlignZero        = errors.New(f(".align of zero"))

	// Instruction errors
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeMissing      = errors.New(f("operand missing"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrAddressInvalid     = errors.New(f("address invalid"))

	// Symbol errors
	ErrLabelDuplicate = errors.New(f("label duplicated"))
	ErrLabelInvalid   = errors.New(f("label invalid"))

	// Memory image errors
	ErrImageOverflow = errors.New(f("memory image overflow"))
)

// ErrTokenUnrecognized is a leading token that is not a label, directive or mnemonic.
type ErrTokenUnrecognized string

func (err ErrTokenUnrecognized) Error() string {
	return f("token '%v' not recognized", string(err))
}

// ErrSymbolMissing is a symbolic operand with no label binding.
type ErrSymbolMissing string

func (err ErrSymbolMissing) Error() string {
	return f("symbolic name '%v' not recognized", string(err))
}

type ErrRegisterInvalid string

func (err ErrRegisterInvalid) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrSyntax locates an error in the source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

var (
	// Decode errors
	ErrOpcodeDecode    = errors.New(f("decode"))
	ErrOpcodeTruncated = errors.New(f("truncated instruction"))
)
