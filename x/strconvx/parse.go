package strconvx

import (
	"baselib-go/errcode"
)

// ParseUint is the strict form of BufferToUlong: the whole of s must be
// digits. bitSize is 8, 16, 32 or 64 (0 means 64).
func ParseUint(s string, base, bitSize int) (uint64, error) {
	const op = "ParseUint"
	if base != 0 && (base < 2 || base > 36) {
		return 0, &errcode.E{C: errcode.InvalidBase, Op: op, Msg: s}
	}
	var (
		n        int
		v        uint64
		overflow bool
	)
	b := []byte(s)
	switch bitSize {
	case 8:
		var x uint8
		n, x, overflow = ParseBuffer[uint8](b, uint(base))
		v = uint64(x)
	case 16:
		var x uint16
		n, x, overflow = ParseBuffer[uint16](b, uint(base))
		v = uint64(x)
	case 32:
		var x uint32
		n, x, overflow = BufferToUint32(b, uint(base))
		v = uint64(x)
	default:
		n, v, overflow = BufferToUlong(b, uint(base))
	}
	switch {
	case n == 0:
		return 0, &errcode.E{C: errcode.NoDigits, Op: op, Msg: s}
	case n != len(s):
		return 0, &errcode.E{C: errcode.InvalidSyntax, Op: op, Msg: s}
	case overflow:
		return v, &errcode.E{C: errcode.Overflow, Op: op, Msg: s}
	}
	return v, nil
}

// ParseInt accepts an optional leading '+' or '-' and otherwise behaves like
// ParseUint. On overflow the result is clamped to the signed range.
func ParseInt(s string, base, bitSize int) (int64, error) {
	if bitSize <= 0 || bitSize > 64 {
		bitSize = 64
	}
	neg := false
	u := s
	if len(u) > 0 && (u[0] == '+' || u[0] == '-') {
		neg = u[0] == '-'
		u = u[1:]
	}
	mag, err := ParseUint(u, base, 64)
	if err != nil && errcode.Of(err) != errcode.Overflow {
		return 0, err
	}

	lim := uint64(1) << (bitSize - 1)
	switch {
	case neg && (err != nil || mag > lim):
		return -int64(lim - 1) - 1, &errcode.E{C: errcode.Overflow, Op: "ParseInt", Msg: s}
	case !neg && (err != nil || mag >= lim):
		return int64(lim - 1), &errcode.E{C: errcode.Overflow, Op: "ParseInt", Msg: s}
	case neg:
		return -int64(mag), nil
	}
	return int64(mag), nil
}

const intSize = 32 << (^uint(0) >> 63)

// Atoi parses a base-10 int of the native width.
func Atoi(s string) (int, error) {
	v, err := ParseInt(s, 10, intSize)
	return int(v), err
}
