package strconvx

import (
	"golang.org/x/exp/constraints"

	"baselib-go/x/charx"
	"baselib-go/x/mathx"
)

// BufferToUlong parses an unsigned number from the front of s.
//
// s need not be NUL-terminated; scanning stops at len(s) or at the first
// byte that is not a digit in base. No whitespace or sign is accepted.
// base is 2..36, or 0 to pick 16 for a 0x/0X prefix, 8 for a leading 0 and
// 10 otherwise. A 0x prefix is also skipped for base 16.
//
// n is the number of bytes consumed; 0 means no digits were found. When the
// value does not fit, overflow is set, v is clamped to the maximum and n
// still covers every valid digit.
func BufferToUlong(s []byte, base uint) (n int, v uint64, overflow bool) {
	return ParseBuffer[uint64](s, base)
}

// BufferToUint32 is BufferToUlong for a 32-bit result.
func BufferToUint32(s []byte, base uint) (n int, v uint32, overflow bool) {
	return ParseBuffer[uint32](s, base)
}

// ParseBuffer is the engine behind BufferToUlong, for any unsigned type.
func ParseBuffer[T constraints.Unsigned](s []byte, base uint) (n int, v T, overflow bool) {
	i := 0
	switch base {
	case 0:
		base, i = detectBase(s)
	case 16:
		if hasHexPrefix(s) {
			i = 2
		}
	}
	if base < 2 || base > 36 {
		return 0, 0, false
	}

	top := mathx.MaxOf[T]()
	b := T(base)
	limit := top / b
	start := i
	for ; i < len(s); i++ {
		d, ok := charx.DigitValue(s[i])
		if !ok || d >= base {
			break
		}
		if overflow {
			continue
		}
		if v > limit || v*b > top-T(d) {
			overflow = true
			v = top
			continue
		}
		v = v*b + T(d)
	}
	if i == start {
		return 0, 0, false
	}
	return i, v, overflow
}

// detectBase mirrors C integer-literal syntax. The prefix is only taken
// when a hex digit follows, so "0x" alone reads as the digit 0.
func detectBase(s []byte) (base uint, skip int) {
	switch {
	case hasHexPrefix(s):
		return 16, 2
	case len(s) > 0 && s[0] == '0':
		return 8, 0
	}
	return 10, 0
}

func hasHexPrefix(s []byte) bool {
	if len(s) < 3 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return false
	}
	d, ok := charx.DigitValue(s[2])
	return ok && d < 16
}
