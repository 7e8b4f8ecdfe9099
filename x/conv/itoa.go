package conv

// Itoa writes base-10 representation of n into buf and returns the used slice.
// buf should be length >= 20 for int64. Negative numbers supported.
// No allocations; no fmt/strconv dependency.
func Itoa(buf []byte, n int64) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	neg := n < 0
	u := uint64(n)
	if neg {
		u = -u
	}
	d := Utoa(buf, u)
	i := len(buf) - len(d)
	if neg && i > 0 {
		i--
		buf[i] = '-'
	}
	return buf[i:]
}
