package cpu

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestNextLine(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		text  string
		lines []string
	}){
		{"empty", "", nil},
		{"single", "HLT", []string{"HLT"}},
		{"lf", "a\nb\nc", []string{"a", "b", "c"}},
		{"cr", "a\rb\rc", []string{"a", "b", "c"}},
		{"crlf", "a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"blank", "a\n\nb", []string{"a", "", "b"}},
		{"blank_crlf", "a\r\n\r\nb", []string{"a", "", "b"}},
		{"trailing", "a\n", []string{"a", ""}},
		{"indent", "  a \n\tb", []string{"  a ", "\tb"}},
	}

	for _, entry := range table {
		cursor := entry.text
		var lines []string
		for len(cursor) > 0 {
			lines = append(lines, NextLine(&cursor))
		}
		assert.Equal(entry.lines, lines, entry.name)

		// Exhausted cursors keep returning empty lines.
		assert.Equal("", NextLine(&cursor), entry.name)
		assert.Equal("", NextLine(&cursor), entry.name)
	}
}

func TestNextLineNoCopy(t *testing.T) {
	assert := assert.New(t)

	text := "first\nsecond"
	cursor := text
	line := NextLine(&cursor)
	assert.Equal("first", line)
	assert.Equal("\nsecond", cursor)
	assert.True(unsafe.StringData(text) == unsafe.StringData(line))
	assert.True(unsafe.Add(unsafe.Pointer(unsafe.StringData(text)), 5) == unsafe.Pointer(unsafe.StringData(cursor)))
}

func TestStripComment(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line     string
		stripped string
	}){
		{"", ""},
		{"LDA 5", "LDA 5"},
		{"LDA 5 # load", "LDA 5 "},
		{"LDA 5 ; load", "LDA 5 "},
		{"LDA 5 // load", "LDA 5 "},
		{"LDA 5 / 2", "LDA 5 / 2"},
		{"a/b/c", "a/b/c"},
		{"a//b;c#d", "a"},
		{"a;b//c", "a"},
		{"///", ""},
		{"x/#y", "x/"},
		{"# only", ""},
		{"/", "/"},
	}

	for _, entry := range table {
		once := StripComment(entry.line)
		assert.Equal(entry.stripped, once, entry.line)
		assert.Equal(once, StripComment(once), entry.line)
	}
}

func TestStripWhitespace(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", StripWhitespace(""))
	assert.Equal("", StripWhitespace(" \t\r "))
	assert.Equal("LDA 5", StripWhitespace("\t LDA 5 \r"))
	assert.Equal("a \t b", StripWhitespace("a \t b"))
}

func TestNextWord(t *testing.T) {
	assert := assert.New(t)

	cursor := "  loop\tLDA   five  "
	assert.Equal("loop", NextWord(&cursor))
	assert.Equal("LDA", NextWord(&cursor))
	assert.Equal("five", NextWord(&cursor))
	assert.Equal("", NextWord(&cursor))
	assert.Equal("", cursor)
	assert.Equal("", NextWord(&cursor))

	cursor = "x"
	assert.Equal("x", NextWord(&cursor))
	assert.Equal(0, len(cursor))
}

func TestSourceLines(t *testing.T) {
	assert := assert.New(t)

	var numbers []int
	var lines []string
	for lineno, line := range sourceLines("\n\nADD 1\r\nOUT") {
		numbers = append(numbers, lineno)
		lines = append(lines, line)
	}

	assert.Equal([]int{1, 2, 3, 4}, numbers)
	assert.Equal([]string{"", "", "ADD 1", "OUT"}, lines)
}
