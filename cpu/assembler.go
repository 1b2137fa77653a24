// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"io"
	"log"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Label binds a name to a mailbox address.
type Label struct {
	Name    string // Label text, a slice of the source.
	Address int    // Mailbox the label refers to.
}

// Assembler is a two pass assembler for the Little Man Computer.
//
// In lenient mode (the default) the assembler behaves like the Peter
// Higginson online simulator: label redefinitions keep the first binding,
// instructions past the last mailbox are dropped, and trailing text after an
// instruction is ignored. Strict mode turns each of those into an error.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
	Strict  bool // If set, enables the additional structural checks.

	label []Label // Label table, only populated during Assemble.
}

// Assemble assembles source into a program image.
func Assemble(source string, strict bool) (prog *Program, err error) {
	asm := &Assembler{Strict: strict}
	return asm.Assemble(source)
}

// Parse reads all of input and assembles it.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	return asm.Assemble(string(data))
}

// Assemble assembles source into a program image.
// The returned error, if any, is an *ErrAssembly for the first problem found.
func (asm *Assembler) Assemble(source string) (prog *Program, err error) {
	if asm.label == nil {
		asm.label = make([]Label, 0, MAILBOX_COUNT)
	}
	asm.label = asm.label[:0]
	defer func() { asm.label = asm.label[:0] }()

	err = asm.bindLabels(source)
	if err != nil {
		return
	}

	prog = &Program{}
	err = asm.encodeAll(source, prog)
	if err != nil {
		prog = nil
		return
	}

	return
}

// lookupLabel finds the address bound to name.
func (asm *Assembler) lookupLabel(name string) (address int, ok bool) {
	for _, label := range asm.label {
		if label.Name == name {
			return label.Address, true
		}
	}

	return
}

// splitOpcode reads the mnemonic of a line, and the label before it if any.
func splitOpcode(line *string) (label, word string, op Mnemonic, ok bool) {
	word = NextWord(line)
	op, ok = LookupMnemonic(word)
	if ok {
		return
	}

	label = word
	word = NextWord(line)
	op, ok = LookupMnemonic(word)

	return
}

// bindLabels is the first pass: it validates the shape of every line and
// binds each label to its mailbox.
func (asm *Assembler) bindLabels(source string) (err error) {
	ip := 0

	for lineno, text := range sourceLines(source) {
		line := StripWhitespace(StripComment(text))
		if len(line) == 0 {
			continue
		}

		label, word, _, ok := splitOpcode(&line)
		if !ok {
			if len(word) == 0 {
				word = label
			}
			err = &ErrAssembly{LineNo: lineno, Template: ErrMnemonicUnknown, Context: word}
			return
		}

		if ip >= MAILBOX_COUNT {
			if asm.Strict {
				err = &ErrAssembly{LineNo: lineno, Template: ErrProgramTooLong, Context: word}
				return
			}
			if asm.Verbose {
				log.Printf("asm: line %d: memory full, '%v' dropped", lineno, word)
			}
			ip++
			continue
		}

		if len(label) > 0 {
			if _, dup := asm.lookupLabel(label); !dup {
				asm.label = append(asm.label, Label{Name: label, Address: ip})
			} else if asm.Strict {
				err = &ErrAssembly{LineNo: lineno, Template: ErrLabelDuplicate, Context: label}
				return
			} else if asm.Verbose {
				log.Printf("asm: line %d: label '%v' redefined, ignored", lineno, label)
			}
		}

		ip++
	}

	return
}

// encodeAll is the second pass: it resolves every operand and writes the
// encoded words into prog.
func (asm *Assembler) encodeAll(source string, prog *Program) (err error) {
	ip := 0

	for lineno, text := range sourceLines(source) {
		line := StripWhitespace(StripComment(text))
		if len(line) == 0 {
			continue
		}

		_, word, op, _ := splitOpcode(&line)
		if ip >= MAILBOX_COUNT {
			continue
		}

		code, aerr := asm.encode(op, word, &line)
		if aerr != nil {
			aerr.LineNo = lineno
			err = aerr
			return
		}

		if asm.Verbose {
			log.Printf("asm: %02d: %03d %-8v ; line %d", ip, int(code), code, lineno)
		}

		prog.Mailbox[ip] = code
		prog.LineNo[ip] = lineno
		ip++
		prog.Size = ip
	}

	return
}

// encode turns one instruction, whose mnemonic has already been read from
// line, into a mailbox word.
func (asm *Assembler) encode(op Mnemonic, word string, line *string) (code Code, err *ErrAssembly) {
	operand := NextWord(line)

	var value int
	switch {
	case op == OP_DAT:
		if len(operand) > 0 {
			value, err = asm.resolve(operand, 0, VALUE_MAX, ErrValueRange)
		}
	case op.TakesOperand():
		if len(operand) == 0 {
			err = &ErrAssembly{Template: ErrOperandMissing, Context: word}
			return
		}
		value, err = asm.resolve(operand, 0, ADDRESS_MAX, ErrAddressRange)
		value += int(op)
	default:
		value = int(op)
		if asm.Strict && len(operand) > 0 {
			err = &ErrAssembly{Template: ErrJunk, Context: operand}
		}
		code = Code(value)
		return
	}

	if err != nil {
		return
	}

	if asm.Strict && len(operand) > 0 {
		if junk := NextWord(line); len(junk) > 0 {
			err = &ErrAssembly{Template: ErrJunk, Context: junk}
			return
		}
	}

	code = Code(value)

	return
}

// isExpression returns true for a $(...) compile-time expression.
func isExpression(word string) bool {
	return len(word) > 3 && strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")")
}

// resolve evaluates an operand that is a literal, a label, or an expression,
// and checks the result is in [lo, hi].
func (asm *Assembler) resolve(operand string, lo, hi int, outOfRange Template) (value int, err *ErrAssembly) {
	if isExpression(operand) {
		var ok bool
		value, ok = asm.parenEval(operand[2 : len(operand)-1])
		if !ok {
			err = &ErrAssembly{Template: ErrExpression, Context: operand}
			return
		}
	} else {
		var perr error
		value, perr = ParseValue(operand)
		switch {
		case perr == nil:
		case errors.Is(perr, ErrNotInRange):
			err = &ErrAssembly{Template: outOfRange, Context: operand}
			return
		default:
			address, ok := asm.lookupLabel(operand)
			if !ok {
				err = &ErrAssembly{Template: ErrLabelUndefined, Context: operand}
				return
			}
			value = address
		}
	}

	if value < lo || value > hi {
		err = &ErrAssembly{Template: outOfRange, Context: operand}
		return
	}

	return
}

// parenEval does compile-time $(...) evaluations, with every label
// predeclared as its address.
func (asm *Assembler) parenEval(expr string) (value int, ok bool) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for _, label := range asm.label {
		pred[label.Name] = starlark.MakeInt(label.Address)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		if asm.Verbose {
			log.Printf("asm: $(%v): %v", expr, err)
		}
		return
	}

	st_int, is_int := dict["rc"].(starlark.Int)
	if !is_int {
		return
	}

	st_int64, fits := st_int.Int64()
	if !fits {
		return
	}

	return int(st_int64), true
}
