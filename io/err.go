package io

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrInputMissing = errors.New(f("tape has no input"))
)

// ErrInput is a token that could not be read as an integer.
type ErrInput struct {
	Token string
	Err   error
}

func (err *ErrInput) Error() string {
	return f("'%v' %v", err.Token, err.Err)
}

func (err *ErrInput) Unwrap() error {
	return err.Err
}
