package cpu

import (
	"fmt"
	"io"
	"iter"
)

// Program is an assembled mailbox image with its source map.
type Program struct {
	Mailbox [MAILBOX_COUNT]Code // Encoded mailbox words.
	LineNo  [MAILBOX_COUNT]int  // Source line of each mailbox, 0 if unused.
	Size    int                 // Number of mailboxes emitted.
}

// Line returns the source line that produced the mailbox at address, or 0.
func (prog *Program) Line(address int) int {
	if address < 0 || address >= MAILBOX_COUNT {
		return 0
	}

	return prog.LineNo[address]
}

// Codes iterates the emitted mailboxes in address order.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(address int, code Code) bool) {
		for address := range prog.Size {
			if !yield(address, prog.Mailbox[address]) {
				return
			}
		}
	}
}

// Listing writes an address, code, disassembly and source line table.
func (prog *Program) Listing(w io.Writer) (err error) {
	for address, code := range prog.Codes() {
		_, err = fmt.Fprintf(w, "%02d: %03d  %-8v ; line %d\n", address, int(code), code, prog.LineNo[address])
		if err != nil {
			return
		}
	}

	return
}
