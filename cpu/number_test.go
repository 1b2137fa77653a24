package cpu

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValueRange(t *testing.T) {
	assert := assert.New(t)

	for value := -VALUE_MAX; value <= VALUE_MAX; value++ {
		forms := []string{fmt.Sprintf("%d", value)}
		if value >= 0 {
			forms = append(forms, fmt.Sprintf("+%d", value), fmt.Sprintf("%03d", value))
		}
		for _, form := range forms {
			got, err := ParseValue(form)
			assert.NoError(err, form)
			assert.Equal(value, got, form)

			got, err = ParseInteger(form)
			assert.NoError(err, form)
			assert.Equal(value, got, form)
		}
	}
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word    string
		value   error
		integer error
	}){
		{"", ErrNotNumber, ErrNotNumber},
		{"-", ErrNotNumber, ErrNotNumber},
		{"+", ErrNotNumber, ErrNotNumber},
		{"five", ErrNotNumber, ErrNotNumber},
		{"12a", ErrNotNumber, ErrNotNumber},
		{"0x10", ErrNotNumber, ErrNotNumber},
		{"--1", ErrNotNumber, ErrNotNumber},
		{" 1", ErrNotNumber, ErrNotNumber},
		{"1000", ErrNotInRange, nil},
		{"-1000", ErrNotInRange, nil},
		{"99999999999999999999999", ErrNotInRange, ErrNotInRange},
		{"-99999999999999999999999", ErrNotInRange, ErrNotInRange},
	}

	for _, entry := range table {
		_, err := ParseValue(entry.word)
		assert.ErrorIs(err, entry.value, entry.word)

		_, err = ParseInteger(entry.word)
		if entry.integer == nil {
			assert.NoError(err, entry.word)
		} else {
			assert.ErrorIs(err, entry.integer, entry.word)
		}
	}
}

func TestParseIntegerLimits(t *testing.T) {
	assert := assert.New(t)

	value, err := ParseInteger(strconv.Itoa(math.MaxInt))
	assert.NoError(err)
	assert.Equal(math.MaxInt, value)

	value, err = ParseInteger(strconv.Itoa(math.MinInt))
	assert.NoError(err)
	assert.Equal(math.MinInt, value)

	_, err = ParseInteger("9223372036854775808")
	assert.ErrorIs(err, ErrNotInRange)

	_, err = ParseInteger("-9223372036854775809")
	assert.ErrorIs(err, ErrNotInRange)
}

func FuzzParseInteger(f *testing.F) {
	for _, seed := range []string{"0", "-0", "+7", "999", "-1000", "12x", ""} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, word string) {
		assert := assert.New(t)

		value, err := ParseInteger(word)
		expected, serr := strconv.ParseInt(word, 10, strconv.IntSize)
		if serr != nil {
			assert.Error(err, word)
			return
		}
		assert.NoError(err, word)
		assert.Equal(int(expected), value, word)

		small, err := ParseValue(word)
		if value < -VALUE_MAX || value > VALUE_MAX {
			assert.ErrorIs(err, ErrNotInRange, word)
		} else {
			assert.NoError(err, word)
			assert.Equal(value, small, word)
		}
	})
}
