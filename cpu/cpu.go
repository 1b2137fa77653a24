// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"
	"strconv"
)

// Termination is the outcome of a single Step.
type Termination int

//go:generate go tool stringer -linecomment -type=Termination
const (
	STEP_NORMAL          = Termination(0) // normal
	STEP_HALT            = Termination(1) // halt
	STEP_BAD_PC          = Termination(2) // bad pc
	STEP_BAD_INSTRUCTION = Termination(3) // bad instruction
	STEP_BAD_INPUT       = Termination(4) // bad input
)

// InputFunc supplies the value for an INP instruction.
// Any error makes the INP fail with STEP_BAD_INPUT.
type InputFunc func() (value int, err error)

// OutputFunc receives the text produced by OUT and OTC.
type OutputFunc func(data []byte)

// ErrInputMissing is recorded when INP executes without an input callback.
var ErrInputMissing = errors.New(f("no input attached"))

// Cpu is the complete state of one Little Man Computer.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Mailbox     [MAILBOX_COUNT]int // Main memory.
	Accumulator int                // The only arithmetic register.
	Pc          int                // Index of the next mailbox to execute.

	Input    InputFunc  // Source for INP.
	Output   OutputFunc // Sink for OUT and OTC.
	InputErr error      // Last error returned by Input, nil after a good INP.

	Ticks int // Instructions completed since the last reset.
}

// NewCpu creates a CPU attached to the given I/O callbacks.
func NewCpu(input InputFunc, output OutputFunc) (cpu *Cpu) {
	cpu = &Cpu{
		Input:  input,
		Output: output,
	}

	return
}

// Reset clears the registers and counters. Mailboxes are left alone.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Accumulator = 0
	cpu.Pc = 0
	cpu.InputErr = nil
	cpu.Ticks = 0
}

// Load copies a program image into the mailboxes and resets the CPU.
func (cpu *Cpu) Load(prog *Program) {
	for n, code := range prog.Mailbox {
		cpu.Mailbox[n] = int(code)
	}

	cpu.Reset()
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("   pc: %02d\n  acc: %d\n", cpu.Pc, cpu.Accumulator)

	for row := 0; row < MAILBOX_COUNT; row += 10 {
		text += fmt.Sprintf("   %02d:", row)
		for _, value := range cpu.Mailbox[row : row+10] {
			text += fmt.Sprintf(" %03d", value)
		}
		text += "\n"
	}

	return
}

// output sends data to the output callback, if any.
func (cpu *Cpu) output(data []byte) {
	if cpu.Output != nil {
		cpu.Output(data)
	}
}

// Step executes exactly one instruction.
// Only STEP_NORMAL permits further stepping; after STEP_BAD_INPUT the same
// INP instruction is retried by the next Step.
func (cpu *Cpu) Step() (term Termination) {
	if cpu.Pc < 0 || cpu.Pc >= MAILBOX_COUNT {
		return STEP_BAD_PC
	}

	code := Code(cpu.Mailbox[cpu.Pc])
	if code == 0 {
		return STEP_HALT
	}

	if cpu.Verbose {
		log.Printf("cpu: %02d: %03d %-7v acc=%d", cpu.Pc, int(code), code, cpu.Accumulator)
	}

	if !code.Valid() {
		return STEP_BAD_INSTRUCTION
	}

	operand := code.Operand()
	next := cpu.Pc + 1

	switch code.Opcode() {
	case CLASS_ADD:
		cpu.Accumulator += cpu.Mailbox[operand]
	case CLASS_SUB:
		cpu.Accumulator -= cpu.Mailbox[operand]
	case CLASS_STA:
		cpu.Mailbox[operand] = cpu.Accumulator
	case CLASS_LDA:
		cpu.Accumulator = cpu.Mailbox[operand]
	case CLASS_BRA:
		next = operand
	case CLASS_BRZ:
		if cpu.Accumulator == 0 {
			next = operand
		}
	case CLASS_BRP:
		if cpu.Accumulator >= 0 {
			next = operand
		}
	case CLASS_IO:
		switch operand {
		case IO_INP:
			value, err := cpu.input()
			cpu.InputErr = err
			if err != nil {
				return STEP_BAD_INPUT
			}
			cpu.Accumulator = value
		case IO_OUT:
			var scratch [24]byte
			text := strconv.AppendInt(scratch[:0], int64(cpu.Accumulator), 10)
			cpu.output(append(text, '\n'))
		case IO_OTC:
			char := [1]byte{byte(cpu.Accumulator)}
			cpu.output(char[:])
		default:
			return STEP_BAD_INSTRUCTION
		}
	default:
		return STEP_BAD_INSTRUCTION
	}

	cpu.Pc = next
	cpu.Ticks++

	return STEP_NORMAL
}

// input reads a value from the input callback.
func (cpu *Cpu) input() (value int, err error) {
	if cpu.Input == nil {
		err = ErrInputMissing
		return
	}

	return cpu.Input()
}

// Err returns the error describing term at the current program counter, or
// nil if term is STEP_NORMAL or STEP_HALT.
func (cpu *Cpu) Err(term Termination) error {
	if term == STEP_NORMAL || term == STEP_HALT {
		return nil
	}

	return cpu.stepErr(term)
}

// stepErr captures the machine location for a termination.
func (cpu *Cpu) stepErr(term Termination) *ErrStep {
	err := &ErrStep{Termination: term, Pc: cpu.Pc}
	if cpu.Pc >= 0 && cpu.Pc < MAILBOX_COUNT {
		err.Code = Code(cpu.Mailbox[cpu.Pc])
	}

	return err
}

// Explain returns a human readable message for any termination.
func (cpu *Cpu) Explain(term Termination) string {
	if term == STEP_NORMAL {
		return ""
	}

	return cpu.stepErr(term).Error()
}
