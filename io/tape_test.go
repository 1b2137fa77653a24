package io

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lmc/cpu"
)

func TestTapeReadNumber(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("  12\n-7\t+3 abc 4x5 99999999999999999999999 8")}

	value, err := tape.ReadNumber()
	assert.NoError(err)
	assert.Equal(12, value)

	value, err = tape.ReadNumber()
	assert.NoError(err)
	assert.Equal(-7, value)

	value, err = tape.ReadNumber()
	assert.NoError(err)
	assert.Equal(3, value)

	_, err = tape.ReadNumber()
	assert.ErrorIs(err, cpu.ErrNotNumber)
	var ierr *ErrInput
	if assert.True(errors.As(err, &ierr)) {
		assert.Equal("abc", ierr.Token)
	}

	_, err = tape.ReadNumber()
	assert.ErrorIs(err, cpu.ErrNotNumber)

	_, err = tape.ReadNumber()
	assert.ErrorIs(err, cpu.ErrNotInRange)

	// Token at end of input without a trailing newline.
	value, err = tape.ReadNumber()
	assert.NoError(err)
	assert.Equal(8, value)

	_, err = tape.ReadNumber()
	assert.ErrorIs(err, io.EOF)
	_, err = tape.ReadNumber()
	assert.ErrorIs(err, io.EOF)
}

func TestTapeInputSwap(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}

	_, err := tape.ReadNumber()
	assert.ErrorIs(err, ErrInputMissing)

	tape.Input = strings.NewReader("1")
	value, err := tape.ReadNumber()
	assert.NoError(err)
	assert.Equal(1, value)

	tape.Input = strings.NewReader("2")
	value, err = tape.ReadNumber()
	assert.NoError(err)
	assert.Equal(2, value)

	tape.Rewind()
	_, err = tape.ReadNumber()
	assert.ErrorIs(err, io.EOF)
}

type failWriter struct {
	calls int
}

func (fw *failWriter) Write(p []byte) (int, error) {
	fw.calls++
	return 0, errors.New("disk on fire")
}

func TestTapeSend(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	tape.Send([]byte("10\n"))
	tape.Send([]byte{'A'})
	assert.NoError(tape.Err)
	assert.Equal("10\nA", output.String())

	fw := &failWriter{}
	tape = &Tape{Output: fw}
	tape.Send([]byte("1"))
	tape.Send([]byte("2"))
	assert.Error(tape.Err)
	assert.Contains(tape.Err.Error(), "disk on fire")
	assert.Equal(1, fw.calls)

	// No output attached discards silently.
	tape = &Tape{}
	tape.Send([]byte("x"))
	assert.NoError(tape.Err)
}
