package cpu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ezrec/lmc/internal"
	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Number parse errors
	ErrNotNumber  = errors.New(f("not a number"))
	ErrNotInRange = errors.New(f("number out of range"))
)

// Template is an assembler message with a single %v placeholder for the
// offending token.
type Template string

// Assembler errors
const (
	ErrMnemonicUnknown = Template("'%v' is not a valid instruction")
	ErrLabelDuplicate  = Template("label '%v' is already defined")
	ErrLabelUndefined  = Template("label '%v' is not defined")
	ErrAddressRange    = Template("address '%v' is out of range")
	ErrValueRange      = Template("value '%v' is out of range")
	ErrOperandMissing  = Template("'%v' requires an address")
	ErrProgramTooLong  = Template("'%v' does not fit in memory")
	ErrJunk            = Template("unexpected '%v' after instruction")
	ErrExpression      = Template("'%v' is not a valid expression")
)

const placeholder = "%v"

// Error returns the template text, so templates can be used as sentinels.
func (tpl Template) Error() string {
	return string(tpl)
}

// ErrAssembly is the first error found while assembling.
type ErrAssembly struct {
	LineNo   int      // 1-based source line.
	Template Template // Message template.
	Context  string   // Offending token, a slice of the source text.
}

// Message returns the translated message without the line number.
func (err *ErrAssembly) Message() string {
	return f(string(err.Template), err.Context)
}

func (err *ErrAssembly) Error() string {
	return f("line %d: %v", err.LineNo, err.Message())
}

func (err *ErrAssembly) Unwrap() error {
	return err.Template
}

// AppendTo renders the untranslated message into dst, never growing dst
// beyond its capacity. Overflow is reported rather than reallocating.
func (err *ErrAssembly) AppendTo(dst []byte) (out []byte, overflow bool) {
	buf := internal.Buffer{Data: dst}

	tpl := string(err.Template)
	before, after, found := strings.Cut(tpl, placeholder)
	buf.WriteString(before)
	if found {
		buf.WriteString(err.Context)
		buf.WriteString(after)
	}

	return buf.Data, buf.Overflow
}

// ErrStep is a Step that did not complete normally.
type ErrStep struct {
	Termination Termination // How the step terminated.
	Pc          int         // Program counter at termination.
	Code        Code        // Mailbox contents at Pc, if Pc is valid.
}

// Runtime errors, for use with errors.Is
var (
	ErrPcInvalid          = &ErrStep{Termination: STEP_BAD_PC}
	ErrInstructionInvalid = &ErrStep{Termination: STEP_BAD_INSTRUCTION}
	ErrInputInvalid       = &ErrStep{Termination: STEP_BAD_INPUT}
)

func (err *ErrStep) Error() string {
	switch err.Termination {
	case STEP_BAD_PC:
		return f("program counter %d is out of range", err.Pc)
	case STEP_BAD_INSTRUCTION:
		code := fmt.Sprintf("%03d", int(err.Code))
		address := fmt.Sprintf("%02d", err.Pc)
		return f("invalid instruction %v at address %v", code, address)
	case STEP_BAD_INPUT:
		return f("invalid input, expected an integer")
	case STEP_HALT:
		return f("program halted")
	default:
		return f("step %v", err.Termination)
	}
}

func (err *ErrStep) Is(target error) bool {
	other, ok := target.(*ErrStep)
	return ok && other.Termination == err.Termination
}
