// Package cpu implements the Little Man Computer and its assembler.
//
// The machine has 100 mailboxes of three decimal digits, a single
// accumulator, and a program counter. Instructions are encoded as
// opcode*100 + address, with the 9xx family reserved for I/O.
//
// The assembler is a two pass, allocation-light translator from mnemonic
// source text to a 100 word mailbox image. Pass one binds labels, pass two
// resolves operands and encodes the words. The first error aborts assembly
// and carries the 1-based source line and the offending token.
//
// Step executes exactly one instruction and reports how it terminated.
package cpu
