// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads assembler settings from a Starlark file.
//
// A configuration file is a Starlark program. After it runs, the following
// globals are read if present:
//
//	capacity = 0x10000                     # memory image size in bytes
//	symbols = {"Stack": 0x800, "io": 0xf000} # predefined symbols
//	verbose = False                        # log each line as it is assembled
//	collect_errors = True                  # report every unresolved symbol
//
// The globals STACK and DEFAULT_CAPACITY hold the built-in defaults.
package config

import (
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/y86asm/y86"
)

// Config holds assembler settings.
type Config struct {
	Capacity      int               // Memory image size in bytes.
	Symbols       map[string]uint32 // Predefined symbols.
	Verbose       bool              // Log each line as it is assembled.
	CollectErrors bool              // Report every unresolved symbol.
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Capacity: y86.DefaultCapacity,
		Symbols:  map[string]uint32{y86.StackSymbol: y86.StackAddress},
	}
}

// Load runs a Starlark configuration file over the defaults.
// If src is nil, the file is read from filename.
func Load(filename string, src any) (cfg *Config, err error) {
	cfg = Default()

	defer func() {
		if err != nil {
			cfg = nil
			err = &ErrConfig{Filename: filename, Err: err}
		}
	}()

	thread := &starlark.Thread{Name: filename}
	opts := &syntax.FileOptions{}
	pred := starlark.StringDict{
		"STACK":            starlark.MakeInt(y86.StackAddress),
		"DEFAULT_CAPACITY": starlark.MakeInt(y86.DefaultCapacity),
	}

	globals, err := starlark.ExecFileOptions(opts, thread, filename, src, pred)
	if err != nil {
		return
	}

	if value, ok := globals["capacity"]; ok {
		var capacity int64
		capacity, err = asInt(value, "capacity")
		if err != nil {
			return
		}
		if capacity <= 0 {
			err = ErrCapacity
			return
		}
		cfg.Capacity = int(capacity)
	}

	if value, ok := globals["symbols"]; ok {
		dict, is_dict := value.(*starlark.Dict)
		if !is_dict {
			err = &ErrType{Key: "symbols", Want: "dict"}
			return
		}
		for _, item := range dict.Items() {
			name, is_str := starlark.AsString(item[0])
			if !is_str {
				err = &ErrType{Key: "symbols", Want: "string keys"}
				return
			}
			var addr int64
			addr, err = asInt(item[1], "symbols["+strconv.Quote(name)+"]")
			if err != nil {
				return
			}
			cfg.Symbols[name] = uint32(addr)
		}
	}

	cfg.Verbose, err = asBool(globals, "verbose", cfg.Verbose)
	if err != nil {
		return
	}

	cfg.CollectErrors, err = asBool(globals, "collect_errors", cfg.CollectErrors)
	if err != nil {
		return
	}

	return
}

// asInt converts a Starlark int to int64.
func asInt(value starlark.Value, key string) (i int64, err error) {
	st_int, ok := value.(starlark.Int)
	if !ok {
		err = &ErrType{Key: key, Want: "int"}
		return
	}
	i, ok = st_int.Int64()
	if !ok {
		err = &ErrType{Key: key, Want: "64-bit int"}
	}
	return
}

// asBool reads an optional Starlark bool global.
func asBool(globals starlark.StringDict, key string, def bool) (b bool, err error) {
	value, ok := globals[key]
	if !ok {
		b = def
		return
	}
	st_bool, ok := value.(starlark.Bool)
	if !ok {
		err = &ErrType{Key: key, Want: "bool"}
		return
	}
	b = bool(st_bool)
	return
}

// Define parses a NAME=VALUE symbol definition and adds it to the configuration.
func (cfg *Config) Define(define string) (err error) {
	name, value, ok := strings.Cut(define, "=")
	if !ok || len(name) == 0 {
		err = ErrDefineSyntax
		return
	}

	addr, err := strconv.ParseUint(value, 0, 32)
	if err != nil {
		return
	}

	cfg.Symbols[name] = uint32(addr)

	return
}

// Assembler creates an assembler with the configured settings.
func (cfg *Config) Assembler() (asm *y86.Assembler) {
	asm = &y86.Assembler{
		Verbose:       cfg.Verbose,
		CollectErrors: cfg.CollectErrors,
		Capacity:      cfg.Capacity,
	}
	for name, addr := range cfg.Symbols {
		asm.Predefine(name, addr)
	}
	return
}
