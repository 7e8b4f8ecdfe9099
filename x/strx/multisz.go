package strx

import "strings"

// MultiSzIndex returns entry index of a packed list of NUL-terminated
// strings ("alpha\x00beta\x00\x00"). The list ends at the first empty entry
// or at the end of multi. ok is false when the list ends before index.
func MultiSzIndex(multi string, index uint) (s string, ok bool) {
	for {
		end := strings.IndexByte(multi, 0)
		if end < 0 {
			end = len(multi)
		}
		if end == 0 {
			return "", false
		}
		if index == 0 {
			return multi[:end], true
		}
		index--
		if end == len(multi) {
			return "", false
		}
		multi = multi[end+1:]
	}
}

// MultiSzCount returns the number of entries before the terminating empty
// string.
func MultiSzCount(multi string) int {
	n := 0
	for {
		end := strings.IndexByte(multi, 0)
		if end < 0 {
			end = len(multi)
		}
		if end == 0 {
			return n
		}
		n++
		if end == len(multi) {
			return n
		}
		multi = multi[end+1:]
	}
}
