// Package hexdump renders canonical dump lines:
//
//	00000010 48 65 6C 6C 6F 0A                                 Hello.
//
// An 8-digit address, 16 byte columns and an ASCII gutter. Short lines are
// padded with spaces so consecutive lines stay aligned.
package hexdump

import (
	"baselib-go/x/bufx"
	"baselib-go/x/charx"
	"baselib-go/x/conv"
	"baselib-go/x/mathx"
)

const (
	// BytesPerLine is the number of source bytes shown on one line.
	BytesPerLine = 16
	// LineLen is the length of one line without its newline.
	LineLen = 8 + 3*BytesPerLine + 2 + BytesPerLine
)

// FormatDumpLine writes one dump line for the first BytesPerLine bytes of src
// into dest at off. It returns the logical length (always off+LineLen) with
// the usual bufx truncation rules.
func FormatDumpLine(dest []byte, off int, address uint32, src []byte) int {
	if off < 0 {
		off = 0
	}
	src = src[:mathx.Clamp(len(src), 0, BytesPerLine)]

	var hex [8]byte
	n := bufx.Write(dest, off, conv.U32Hex(hex[:], address))
	for i := 0; i < BytesPerLine; i++ {
		if i < len(src) {
			n = bufx.WriteByte(dest, n, ' ')
			n = bufx.Write(dest, n, conv.U8Hex(hex[:2], src[i]))
		} else {
			n = bufx.Fill(dest, n, ' ', 3)
		}
	}
	n = bufx.Fill(dest, n, ' ', 2)
	for _, c := range src {
		if !charx.IsPrint(c) {
			c = '.'
		}
		n = bufx.WriteByte(dest, n, c)
	}
	return bufx.Fill(dest, n, ' ', BytesPerLine-len(src))
}

// FormatDump writes every line needed for src, each followed by '\n'.
// address labels the first byte and advances by BytesPerLine per line.
func FormatDump(dest []byte, off int, address uint32, src []byte) int {
	if off < 0 {
		off = 0
	}
	n := off
	for len(src) > 0 {
		n = FormatDumpLine(dest, n, address, src)
		n = bufx.WriteByte(dest, n, '\n')
		src = src[mathx.Min(len(src), BytesPerLine):]
		address += BytesPerLine
	}
	return n
}

// LineCount reports how many lines FormatDump emits for n bytes.
func LineCount(n int) int { return mathx.CeilDiv(mathx.Max(n, 0), BytesPerLine) }
