// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"io"
	"log"

	"github.com/ezrec/lmc/cpu"
	lmcio "github.com/ezrec/lmc/io"
)

// Emulator state. CPU + program listing + tape.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program.

	Tape lmcio.Tape // Console tape for INP, OUT and OTC.

	Limit       int             // If nonzero, Run stops after this many instructions.
	Termination cpu.Termination // Result of the most recent step.
}

// NewEmulator creates a new emulator with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
	}

	emu.Cpu = cpu.NewCpu(emu.Tape.ReadNumber, emu.Tape.Send)

	return
}

// Reset loads the program into the mailboxes and resets the CPU.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Load(emu.Program)
	emu.Tape.Err = nil
	emu.Termination = cpu.STEP_NORMAL
}

// LineNo returns the source line of the instruction at the program counter,
// or 0 if there is none.
func (emu *Emulator) LineNo() int {
	return emu.Program.Line(emu.Cpu.Pc)
}

// inputRecoverable returns true if the input error is a malformed number,
// rather than a failure of the input stream itself.
func inputRecoverable(err error) bool {
	return errors.Is(err, cpu.ErrNotNumber) || errors.Is(err, cpu.ErrNotInRange)
}

// Tick performs a single step of the emulator.
// A bad input is reported with done false; the next Tick retries the INP.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	term := emu.Cpu.Step()
	emu.Termination = term

	switch term {
	case cpu.STEP_NORMAL:
		if emu.Tape.Err != nil {
			done = true
			err = emu.Tape.Err
		}
	case cpu.STEP_HALT:
		done = true
	case cpu.STEP_BAD_INPUT:
		switch input_err := emu.Cpu.InputErr; {
		case inputRecoverable(input_err):
			err = emu.Cpu.Err(term)
		case errors.Is(input_err, io.EOF):
			done = true
			err = ErrEndOfInput
		default:
			done = true
			err = input_err
		}
	default:
		done = true
		err = emu.Cpu.Err(term)
	}

	return
}

// Run ticks until the program halts or fails. Bad input is reported on the
// tape output and the INP retried. Returns nil if the program halted.
func (emu *Emulator) Run() (err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if done {
			return
		}

		if err != nil {
			if emu.Verbose {
				log.Printf("emulator: %v", err)
			}
			emu.Tape.Send([]byte(emu.Cpu.Explain(emu.Termination) + "\n"))
			err = nil
		}

		if emu.Limit > 0 && emu.Cpu.Ticks >= emu.Limit {
			err = &ErrRuntime{LineNo: emu.LineNo(), Err: ErrTickLimit}
			return
		}
	}
}
