package conv

const (
	lowerDigits = "0123456789abcdefghijklmnopqrstuvwxyz"
	upperDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// MaxDigits is enough room for a uint64 in base 2.
const MaxDigits = 64

// FormatUint writes the base-b representation of n into the tail of buf and
// returns the used slice. Bases outside 2..36 fall back to 10. upper selects
// 'A'..'Z' for digits above 9. buf should be MaxDigits long for base 2;
// a shorter buf keeps only the least significant digits.
func FormatUint(buf []byte, n uint64, base int, upper bool) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	if base < 2 || base > 36 {
		base = 10
	}
	digits := lowerDigits
	if upper {
		digits = upperDigits
	}
	i := len(buf)
	if n == 0 {
		i--
		buf[i] = '0'
		return buf[i:]
	}
	b := uint64(base)
	for n > 0 && i > 0 {
		i--
		buf[i] = digits[n%b]
		n /= b
	}
	return buf[i:]
}

// Utoa writes base-10 representation of n into buf and returns the used slice.
// buf should be length >= 20 for uint64.
func Utoa(buf []byte, n uint64) []byte { return FormatUint(buf, n, 10, false) }
