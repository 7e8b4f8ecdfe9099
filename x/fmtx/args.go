package fmtx

// signedArg returns the magnitude and sign of an integer argument. Unsigned
// values are taken at face value; anything that is not an integer or bool
// reads as 0.
func signedArg(a any) (mag uint64, neg bool) {
	var v int64
	switch x := a.(type) {
	case int:
		v = int64(x)
	case int8:
		v = int64(x)
	case int16:
		v = int64(x)
	case int32: // covers rune
		v = int64(x)
	case int64:
		v = x
	default:
		return unsignedArg(a), false
	}
	if v < 0 {
		return -uint64(v), true
	}
	return uint64(v), false
}

// unsignedArg returns an integer argument as uint64. Negative signed values
// are reinterpreted at their own width, so int8(-1) is 0xff.
func unsignedArg(a any) uint64 {
	switch x := a.(type) {
	case int:
		return uint64(uint(x))
	case int8:
		return uint64(uint8(x))
	case int16:
		return uint64(uint16(x))
	case int32:
		return uint64(uint32(x))
	case int64:
		return uint64(x)
	case uint:
		return uint64(x)
	case uint8: // covers byte
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	case uintptr:
		return uint64(x)
	case bool:
		if x {
			return 1
		}
	}
	return 0
}

// stringArg returns the text for a non-[]byte %s argument.
func stringArg(a any) string {
	switch x := a.(type) {
	case nil:
		return "(null)"
	case string:
		return x
	case error:
		return x.Error()
	case interface{ String() string }:
		return x.String()
	}
	return "(?)"
}

// cLen is the length of s up to its first NUL, like the C strings it
// usually stands in for.
func cLen[T ~string | ~[]byte](s T) int {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return i
		}
	}
	return len(s)
}
