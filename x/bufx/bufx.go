// Package bufx writes into caller-owned, fixed-size text buffers.
//
// Every writer takes the destination slice and a cursor offset and returns
// the logical length: the offset plus everything that was asked to be
// written, whether or not it fit. A result >= len(dest) means the text was
// truncated; passing an empty dest measures without writing. The last byte
// of dest is always kept for a NUL terminator.
package bufx

import "baselib-go/errcode"

// Write copies p into dest at off and returns off+len(p).
func Write(dest []byte, off int, p []byte) int {
	if off < 0 {
		off = 0
	}
	if off < len(dest)-1 {
		copy(dest[off:len(dest)-1], p)
	}
	n := off + len(p)
	Terminate(dest, off, n)
	return n
}

// WriteString is Write for a string.
func WriteString(dest []byte, off int, s string) int {
	if off < 0 {
		off = 0
	}
	if off < len(dest)-1 {
		copy(dest[off:len(dest)-1], s)
	}
	n := off + len(s)
	Terminate(dest, off, n)
	return n
}

// WriteByte writes a single byte.
func WriteByte(dest []byte, off int, c byte) int {
	if off < 0 {
		off = 0
	}
	if off < len(dest)-1 {
		dest[off] = c
	}
	Terminate(dest, off, off+1)
	return off + 1
}

// Fill writes n copies of c. n <= 0 writes nothing but still terminates.
func Fill(dest []byte, off int, c byte, n int) int {
	if off < 0 {
		off = 0
	}
	if n < 0 {
		n = 0
	}
	end := off + n
	for i := off; i < end && i < len(dest)-1; i++ {
		dest[i] = c
	}
	Terminate(dest, off, end)
	return end
}

// Terminate places the NUL for text that started at start and has logical
// end n. Nothing is written when start is already outside dest.
func Terminate(dest []byte, start, n int) {
	if start < 0 || start >= len(dest) {
		return
	}
	if n > len(dest)-1 {
		n = len(dest) - 1
	}
	dest[n] = 0
}

// Truncated reports whether logical length n did not fit dest with its NUL.
func Truncated(dest []byte, n int) bool { return n >= len(dest) }

// Check is Truncated as an error: errcode.Truncated or nil.
func Check(dest []byte, n int) error {
	if Truncated(dest, n) {
		return errcode.Truncated
	}
	return nil
}

// String returns the NUL-terminated text at the start of dest.
func String(dest []byte) string {
	for i, c := range dest {
		if c == 0 {
			return string(dest[:i])
		}
	}
	return string(dest)
}
