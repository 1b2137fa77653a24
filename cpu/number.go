package cpu

import (
	"math"
)

const (
	VALUE_MAX   = 999 // Largest magnitude a mailbox operand may hold.
	ADDRESS_MAX = 99  // Largest mailbox address.
)

// parseLimited parses an optionally signed decimal word, rejecting any
// magnitude above posLimit (or negLimit for negative values). The overflow
// check happens before each digit is combined, so nothing ever wraps.
func parseLimited(word string, posLimit, negLimit uint) (value int, err error) {
	negate := false
	limit := posLimit

	if len(word) > 0 {
		switch word[0] {
		case '-':
			negate = true
			limit = negLimit
			word = word[1:]
		case '+':
			word = word[1:]
		}
	}

	if len(word) == 0 {
		err = ErrNotNumber
		return
	}

	var magnitude uint
	for n := 0; n < len(word); n++ {
		c := word[n]
		if c < '0' || c > '9' {
			err = ErrNotNumber
			return
		}
		digit := uint(c - '0')
		if magnitude > (limit-digit)/10 {
			err = ErrNotInRange
			return
		}
		magnitude = magnitude*10 + digit
	}

	if negate {
		value = int(-magnitude)
	} else {
		value = int(magnitude)
	}

	return
}

// ParseInteger parses a decimal integer over the full native int range.
func ParseInteger(word string) (value int, err error) {
	return parseLimited(word, math.MaxInt, uint(math.MaxInt)+1)
}

// ParseValue parses a decimal integer in [-VALUE_MAX, VALUE_MAX].
func ParseValue(word string) (value int, err error) {
	return parseLimited(word, VALUE_MAX, VALUE_MAX)
}
