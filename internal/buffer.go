package internal

import (
	"strconv"
)

// Buffer appends into caller-provided storage without ever growing it.
// Data that does not fit is dropped and Overflow is set.
type Buffer struct {
	Data     []byte // Bytes written so far.
	Overflow bool   // Set if any write was truncated.
}

// NewBuffer creates a buffer over the capacity of storage.
func NewBuffer(storage []byte) Buffer {
	return Buffer{Data: storage[:0]}
}

// Write copies as much of p as fits.
func (buf *Buffer) Write(p []byte) (n int, err error) {
	n = min(cap(buf.Data)-len(buf.Data), len(p))
	buf.Data = append(buf.Data, p[:n]...)
	if n < len(p) {
		buf.Overflow = true
	}
	return len(p), nil
}

// WriteString copies as much of str as fits.
func (buf *Buffer) WriteString(str string) (n int, err error) {
	n = min(cap(buf.Data)-len(buf.Data), len(str))
	buf.Data = append(buf.Data, str[:n]...)
	if n < len(str) {
		buf.Overflow = true
	}
	return len(str), nil
}

// WriteByte appends c if there is room.
func (buf *Buffer) WriteByte(c byte) error {
	if len(buf.Data) == cap(buf.Data) {
		buf.Overflow = true
		return nil
	}
	buf.Data = append(buf.Data, c)
	return nil
}

// WriteInt appends the decimal text of value.
func (buf *Buffer) WriteInt(value int) {
	var digits [24]byte
	buf.Write(strconv.AppendInt(digits[:0], int64(value), 10))
}

// Bytes returns the data written so far.
func (buf *Buffer) Bytes() []byte {
	return buf.Data
}
