package io

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/ezrec/lmc/cpu"
)

// Tape provides the LMC's numeric input and text output over byte streams.
// Input is consumed as whitespace delimited decimal integers; a malformed
// token is skipped entirely so the next read starts on a fresh token.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	Err error // First output error. Output stops once set.

	source io.Reader
	reader *bufio.Reader
}

// isBlank returns true for token separators.
func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// Rewind drops any buffered input and clears the output error.
func (tc *Tape) Rewind() {
	tc.source = nil
	tc.reader = nil
	tc.Err = nil
}

// input returns the buffered reader for Input.
func (tc *Tape) input() *bufio.Reader {
	if tc.reader == nil || tc.source != tc.Input {
		tc.source = tc.Input
		tc.reader = bufio.NewReader(tc.Input)
	}

	return tc.reader
}

// readToken reads the next whitespace delimited token.
// End of input before any token is reported as io.EOF.
func (tc *Tape) readToken() (token string, err error) {
	if tc.Input == nil {
		err = ErrInputMissing
		return
	}

	reader := tc.input()

	var c byte
	for {
		c, err = reader.ReadByte()
		if err != nil {
			err = errors.Wrap(err, "tape input")
			return
		}
		if !isBlank(c) {
			break
		}
	}

	var text strings.Builder
	for {
		text.WriteByte(c)
		c, err = reader.ReadByte()
		if err == io.EOF {
			err = nil
			break
		}
		if err != nil {
			err = errors.Wrap(err, "tape input")
			return
		}
		if isBlank(c) {
			break
		}
	}

	token = text.String()

	return
}

// ReadNumber reads the next integer from the tape.
// It satisfies cpu.InputFunc.
func (tc *Tape) ReadNumber() (value int, err error) {
	token, err := tc.readToken()
	if err != nil {
		return
	}

	value, err = cpu.ParseInteger(token)
	if err != nil {
		err = &ErrInput{Token: token, Err: err}
		return
	}

	return
}

// Send writes data to the tape output.
// It satisfies cpu.OutputFunc.
func (tc *Tape) Send(data []byte) {
	if tc.Output == nil || tc.Err != nil {
		return
	}

	_, err := tc.Output.Write(data)
	if err != nil {
		tc.Err = errors.Wrap(err, "tape output")
	}
}
