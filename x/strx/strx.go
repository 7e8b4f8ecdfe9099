package strx

import (
	"strings"

	"baselib-go/x/bufx"
	"baselib-go/x/charx"
)

// cstr cuts s at its first NUL, if any.
func cstr(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

// SafeCopyString copies src into dest at off, truncating to fit and always
// leaving dest NUL-terminated when off < len(dest). src ends at its first
// NUL. Returns off plus the full length of src.
func SafeCopyString(dest []byte, off int, src string) int {
	return bufx.WriteString(dest, off, cstr(src))
}

// CompareCaseInsensitive compares ASCII case-folded left and right and
// returns -1, 0 or +1. The end of a string, or a NUL, sorts before any
// other byte.
func CompareCaseInsensitive(left, right string) int {
	for i := 0; ; i++ {
		var l, r byte
		if i < len(left) {
			l = charx.ToLower(left[i])
		}
		if i < len(right) {
			r = charx.ToLower(right[i])
		}
		switch {
		case l < r:
			return -1
		case l > r:
			return 1
		case l == 0:
			return 0
		}
	}
}

// EqualFold reports whether left and right are equal ignoring ASCII case.
func EqualFold(left, right string) bool { return CompareCaseInsensitive(left, right) == 0 }
