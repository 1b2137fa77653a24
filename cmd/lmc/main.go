// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"

	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/emulator"
	"github.com/ezrec/lmc/internal"
)

// Exit codes.
const (
	EXIT_OK    = 0 // Program assembled and ran.
	EXIT_ASM   = 1 // Usage or assembly error.
	EXIT_INPUT = 2 // Unreadable source, end of input, or output failure.
)

func main() {
	os.Exit(run())
}

// run assembles and executes the program named on the command line, and
// returns the process exit code.
func run() int {
	var strict bool
	var input string
	var output string
	var verbose bool
	var dump bool
	var listing bool
	var limit int

	flag.BoolVar(&strict, "strict", true, "Enable strict assembly checks")
	flag.StringVar(&input, "i", "-", "INP input")
	flag.StringVar(&output, "o", "-", "OUT/OTC output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&dump, "d", false, "Dump the assembled program to stderr")
	flag.BoolVar(&listing, "l", false, "Print a listing to stderr, do not execute")
	flag.IntVar(&limit, "n", 0, "Stop after this many instructions (0 for no limit)")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Printf("%v: expected one source file, got %v", os.Args[0], flag.Args())
		flag.Usage()
		return EXIT_ASM
	}
	source := flag.Arg(0)

	text, err := os.ReadFile(source)
	if err != nil {
		log.Printf("%v", err)
		return EXIT_INPUT
	}

	asm := &cpu.Assembler{Strict: strict, Verbose: verbose}
	prog, err := asm.Assemble(string(text))
	if err != nil {
		reportAssembly(source, err)
		return EXIT_ASM
	}

	if dump {
		pp.Fprintln(os.Stderr, prog)
	}

	if listing {
		err = prog.Listing(os.Stderr)
		if err != nil {
			log.Printf("%v", err)
			return EXIT_INPUT
		}
		return EXIT_OK
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.Limit = limit

	if input == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Printf("%v", err)
			return EXIT_INPUT
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Printf("%v", err)
			return EXIT_INPUT
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	emu.Reset()
	err = emu.Run()

	return report(emu, err)
}

// reportAssembly prints "file:line: message" for an assembly error.
func reportAssembly(source string, err error) {
	var aerr *cpu.ErrAssembly
	if !errors.As(err, &aerr) {
		log.Printf("%v: %v", source, err)
		return
	}

	var mem [128]byte
	buf := internal.NewBuffer(mem[:])
	buf.WriteString(source)
	buf.WriteByte(':')
	buf.WriteInt(aerr.LineNo)
	buf.WriteString(": ")
	var overflow bool
	buf.Data, overflow = aerr.AppendTo(buf.Data)
	buf.WriteByte('\n')
	if overflow || buf.Overflow {
		buf.Data = append(buf.Data[:cap(buf.Data)-4], "...\n"...)
	}

	os.Stderr.Write(buf.Bytes())
}

// report prints how the run ended and picks the exit code.
func report(emu *emulator.Emulator, err error) int {
	switch {
	case err == nil:
		if emu.Verbose {
			fmt.Fprintln(os.Stderr, emu.Cpu.Explain(emu.Termination))
		}
		return EXIT_OK
	case errors.Is(err, emulator.ErrEndOfInput):
		fmt.Fprintln(os.Stderr, err)
		return EXIT_INPUT
	case emu.Tape.Err != nil:
		fmt.Fprintln(os.Stderr, err)
		return EXIT_INPUT
	default:
		fmt.Fprintln(os.Stderr, err)
		return EXIT_OK
	}
}
