package config

import (
	"errors"

	"github.com/ezrec/y86asm/translate"
)

var f = translate.From

var (
	ErrDefineSyntax = errors.New(f("define must be NAME=VALUE"))
	ErrCapacity     = errors.New(f("capacity must be positive"))
)

// ErrType is a configuration global of the wrong type.
type ErrType struct {
	Key  string
	Want string
}

func (err *ErrType) Error() string {
	return f("%v: expected %v", err.Key, err.Want)
}

// ErrConfig locates an error in a configuration file.
type ErrConfig struct {
	Filename string
	Err      error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Filename, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
