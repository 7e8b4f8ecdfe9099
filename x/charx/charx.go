// Package charx classifies single ASCII bytes. Nothing here looks at locale
// or UTF-8; a byte is a byte.
package charx

// IsDigit reports whether c is a decimal digit.
func IsDigit(c byte) bool { return '0' <= c && c <= '9' }

// IsLower reports whether c is 'a'..'z'.
func IsLower(c byte) bool { return 'a' <= c && c <= 'z' }

// IsUpper reports whether c is 'A'..'Z'.
func IsUpper(c byte) bool { return 'A' <= c && c <= 'Z' }

// IsPrint reports whether c is ANSI printable (0x20..0x7e).
func IsPrint(c byte) bool { return 0x20 <= c && c <= 0x7e }

// IsWhite reports whether c is ' ' or any control character 0x00..0x1f.
// Broader than unicode.IsSpace on purpose: NUL and BEL count too.
func IsWhite(c byte) bool { return c <= 0x20 }

// ToLower folds 'A'..'Z' to lower case and returns anything else unchanged.
func ToLower(c byte) byte {
	if IsUpper(c) {
		return c - 'A' + 'a'
	}
	return c
}

// DigitValue maps '0'..'9', 'a'..'z' and 'A'..'Z' to 0..35.
// ok is false for every other byte.
func DigitValue(c byte) (d uint, ok bool) {
	switch {
	case IsDigit(c):
		return uint(c - '0'), true
	case IsLower(c):
		return uint(c-'a') + 10, true
	case IsUpper(c):
		return uint(c-'A') + 10, true
	}
	return 0, false
}
