// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/y86asm/config"
	"github.com/ezrec/y86asm/listing"
	"github.com/ezrec/y86asm/translate"
)

type options struct {
	config    string
	defines   []string
	output    string
	source    bool
	symbols   bool
	keepGoing bool
	verbose   bool
	dump      bool
	lang      string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "y86asm [file]",
		Short: "Assemble Y86 source into a memory image",
		Long: `y86asm assembles a Y86 source file and prints the bytes emitted
for each line, followed by a dump of the memory image.

If no file is given, the file name is read from standard input.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.config, "config", "c", "", "Starlark configuration file")
	flags.StringArrayVarP(&opts.defines, "define", "D", nil, "predefine symbol NAME=VALUE")
	flags.StringVarP(&opts.output, "output", "o", "", "write the raw memory image to this file")
	flags.BoolVarP(&opts.source, "listing", "l", false, "print a source listing")
	flags.BoolVarP(&opts.symbols, "symbols", "s", false, "print the symbol table")
	flags.BoolVarP(&opts.keepGoing, "keep-going", "k", false, "report every unresolved symbol")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose mode")
	flags.BoolVar(&opts.dump, "dump", false, "dump the assembled program structure")
	flags.StringVar(&opts.lang, "lang", "", "language for diagnostics (default from locale)")

	return cmd
}

// prompt asks for the file to assemble.
func prompt(in io.Reader, out io.Writer) (filename string, err error) {
	fmt.Fprint(out, "File to assemble >> ")

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		err = scanner.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return
	}

	filename = strings.TrimSpace(scanner.Text())
	fmt.Fprintln(out)

	return
}

func run(cmd *cobra.Command, opts *options, args []string) (err error) {
	out := cmd.OutOrStdout()

	if len(opts.lang) != 0 {
		err = translate.SetLanguage(opts.lang)
		if err != nil {
			return
		}
	}

	cfg := config.Default()
	if len(opts.config) != 0 {
		cfg, err = config.Load(opts.config, nil)
		if err != nil {
			return
		}
	}
	for _, define := range opts.defines {
		err = cfg.Define(define)
		if err != nil {
			return fmt.Errorf("-D %v: %w", define, err)
		}
	}
	cfg.Verbose = cfg.Verbose || opts.verbose
	cfg.CollectErrors = cfg.CollectErrors || opts.keepGoing

	var filename string
	if len(args) == 1 {
		filename = args[0]
	} else {
		filename, err = prompt(cmd.InOrStdin(), out)
		if err != nil {
			return
		}
	}

	inf, err := os.Open(filename)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := cfg.Assembler()
	prog, err := asm.Assemble(inf)
	if err != nil {
		return fmt.Errorf("%v: %w", filename, err)
	}

	if opts.dump {
		pp.Fprintln(cmd.ErrOrStderr(), prog.Extents, prog.Symbols)
	}

	if opts.source {
		err = listing.Source(out, prog)
		if err != nil {
			return
		}
		fmt.Fprintln(out)
	}

	if opts.symbols {
		err = listing.Symbols(out, prog)
		if err != nil {
			return
		}
		fmt.Fprintln(out)
	}

	err = listing.File(out, prog)
	if err != nil {
		return
	}
	fmt.Fprintln(out)

	err = listing.Memory(out, prog)
	if err != nil {
		return
	}

	if len(opts.output) != 0 {
		err = os.WriteFile(opts.output, prog.Bytes(), 0o644)
		if err != nil {
			return
		}
	}

	return
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
