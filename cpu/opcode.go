package cpu

import (
	"fmt"
	"strings"
)

const (
	MAILBOX_COUNT = 100 // Number of mailboxes in the machine.
)

// Mnemonic is the base value an assembly mnemonic encodes to.
type Mnemonic int

const (
	OP_HLT = Mnemonic(0)    // Halt.
	OP_ADD = Mnemonic(100)  // Add mailbox to accumulator.
	OP_SUB = Mnemonic(200)  // Subtract mailbox from accumulator.
	OP_STA = Mnemonic(300)  // Store accumulator to mailbox.
	OP_LDA = Mnemonic(500)  // Load accumulator from mailbox.
	OP_BRA = Mnemonic(600)  // Branch always.
	OP_BRZ = Mnemonic(700)  // Branch if accumulator is zero.
	OP_BRP = Mnemonic(800)  // Branch if accumulator is zero or positive.
	OP_INP = Mnemonic(901)  // Input to accumulator.
	OP_OUT = Mnemonic(902)  // Output accumulator as a number.
	OP_OTC = Mnemonic(922)  // Output accumulator as a character.
	OP_DAT = Mnemonic(1000) // Data pseudo-instruction, never encoded.
)

// Decoded opcode classes (the hundreds digit).
const (
	CLASS_HLT = 0
	CLASS_ADD = 1
	CLASS_SUB = 2
	CLASS_STA = 3
	CLASS_RSV = 4 // Reserved; always invalid.
	CLASS_LDA = 5
	CLASS_BRA = 6
	CLASS_BRZ = 7
	CLASS_BRP = 8
	CLASS_IO  = 9
)

// I/O operands of CLASS_IO.
const (
	IO_INP = 1
	IO_OUT = 2
	IO_OTC = 22
)

// mnemonicTable lists every accepted mnemonic, including synonyms.
var mnemonicTable = [...]struct {
	name string
	op   Mnemonic
}{
	{"HLT", OP_HLT},
	{"COB", OP_HLT},
	{"ADD", OP_ADD},
	{"SUB", OP_SUB},
	{"STA", OP_STA},
	{"STO", OP_STA},
	{"LDA", OP_LDA},
	{"BRA", OP_BRA},
	{"BRZ", OP_BRZ},
	{"BRP", OP_BRP},
	{"INP", OP_INP},
	{"OUT", OP_OUT},
	{"OTC", OP_OTC},
	{"DAT", OP_DAT},
}

// LookupMnemonic finds the mnemonic for word, ignoring case.
func LookupMnemonic(word string) (op Mnemonic, ok bool) {
	for _, entry := range mnemonicTable {
		if strings.EqualFold(word, entry.name) {
			return entry.op, true
		}
	}

	return
}

// TakesOperand returns true if the mnemonic requires an address operand.
func (op Mnemonic) TakesOperand() bool {
	return op != OP_DAT && op != 0 && op%100 == 0
}

// String returns the canonical mnemonic name.
func (op Mnemonic) String() string {
	for _, entry := range mnemonicTable {
		if entry.op == op {
			return entry.name
		}
	}

	return fmt.Sprintf("Mnemonic(%d)", int(op))
}

// Code is a single encoded mailbox word.
type Code int

// Opcode returns the hundreds digit of the word.
func (code Code) Opcode() int {
	return int(code) / 100
}

// Operand returns the address (or I/O selector) digits of the word.
func (code Code) Operand() int {
	return int(code) % 100
}

// Valid returns true if the code is in the three digit mailbox range.
func (code Code) Valid() bool {
	return code >= 0 && code <= VALUE_MAX
}

// Mnemonic returns the mnemonic that encodes to this code, if any.
func (code Code) Mnemonic() (op Mnemonic, ok bool) {
	if !code.Valid() {
		return
	}

	switch opcode := code.Opcode(); opcode {
	case CLASS_HLT:
		if code == 0 {
			return OP_HLT, true
		}
	case CLASS_RSV:
	case CLASS_IO:
		switch code.Operand() {
		case IO_INP:
			return OP_INP, true
		case IO_OUT:
			return OP_OUT, true
		case IO_OTC:
			return OP_OTC, true
		}
	default:
		return Mnemonic(opcode * 100), true
	}

	return
}

// String returns the assembly language representation of the code.
// Words that are not instructions render as data.
func (code Code) String() string {
	op, ok := code.Mnemonic()
	switch {
	case !ok:
		return fmt.Sprintf("DAT %d", int(code))
	case op.TakesOperand():
		return fmt.Sprintf("%v %02d", op, code.Operand())
	default:
		return op.String()
	}
}
