package cpu

import (
	"iter"
)

// isLineEnd returns true for line terminator characters.
func isLineEnd(c byte) bool {
	return c == '\n' || c == '\r'
}

// isSpace returns true for word separators within a line.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

// NextLine returns the next line of the text at cursor, and advances cursor
// past it. A single leading line terminator ("\n", "\r" or "\r\n") is skipped
// first. An exhausted cursor returns "" forever; callers must stop on
// len(*cursor) == 0, not on an empty line.
func NextLine(cursor *string) (line string) {
	text := *cursor

	if len(text) > 0 && text[0] == '\r' {
		text = text[1:]
	}
	if len(text) > 0 && text[0] == '\n' {
		text = text[1:]
	}

	end := 0
	for end < len(text) && !isLineEnd(text[end]) {
		end++
	}

	line = text[:end]
	*cursor = text[end:]

	return
}

// StripComment truncates line at the first '#', ';' or "//".
func StripComment(line string) string {
	end := len(line)

	for n := len(line) - 1; n >= 0; n-- {
		switch line[n] {
		case '#', ';':
			end = n
		case '/':
			if n > 0 && line[n-1] == '/' {
				end = n - 1
			}
		}
	}

	return line[:end]
}

// StripWhitespace trims spaces, tabs and carriage returns from both ends.
func StripWhitespace(line string) string {
	start := 0
	for start < len(line) && isSpace(line[start]) {
		start++
	}

	end := len(line)
	for end > start && isSpace(line[end-1]) {
		end--
	}

	return line[start:end]
}

// NextWord returns the next whitespace delimited word at cursor, and
// advances cursor past it. An exhausted cursor returns "" forever.
func NextWord(cursor *string) (word string) {
	text := *cursor

	start := 0
	for start < len(text) && isSpace(text[start]) {
		start++
	}

	end := start
	for end < len(text) && !isSpace(text[end]) {
		end++
	}

	word = text[start:end]
	*cursor = text[end:]

	return
}

// sourceLines iterates the lines of source with their 1-based line numbers.
func sourceLines(source string) iter.Seq2[int, string] {
	return func(yield func(lineno int, line string) bool) {
		cursor := source
		lineno := 1

		// NextLine skips a leading terminator, which here ends an empty
		// first line.
		if len(cursor) > 0 && isLineEnd(cursor[0]) {
			if !yield(lineno, "") {
				return
			}
			lineno++
		}

		for ; len(cursor) > 0; lineno++ {
			if !yield(lineno, NextLine(&cursor)) {
				return
			}
		}
	}
}
