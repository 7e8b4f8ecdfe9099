package strx

import (
	"testing"

	"baselib-go/x/bufx"
)

func TestSafeCopyString(t *testing.T) {
	dest := []byte{'x', 'x', 'x'}
	n := SafeCopyString(dest, 0, "hello")
	if n != 5 {
		t.Fatalf("logical length = %d, want 5", n)
	}
	if string(dest) != "he\x00" {
		t.Fatalf("dest = %q, want %q", dest, "he\x00")
	}
}

func TestSafeCopyStringAppendAndMeasure(t *testing.T) {
	dest := make([]byte, 16)
	n := SafeCopyString(dest, 0, "key")
	n = SafeCopyString(dest, n, "=value")
	if n != 9 || bufx.String(dest) != "key=value" {
		t.Fatalf("append: n=%d dest=%q", n, bufx.String(dest))
	}
	if n := SafeCopyString(nil, 4, "abc"); n != 7 {
		t.Fatalf("probe = %d, want 7", n)
	}
	if n := SafeCopyString(dest, 0, "ab\x00cd"); n != 2 || bufx.String(dest) != "ab" {
		t.Fatalf("embedded NUL: n=%d dest=%q", n, bufx.String(dest))
	}
}

func TestCompareCaseInsensitive(t *testing.T) {
	type C struct {
		l, r string
		want int
	}
	for _, c := range []C{
		{"ABC", "abc", 0},
		{"abc", "abd", -1},
		{"abd", "ABC", 1},
		{"", "", 0},
		{"", "a", -1},
		{"ab", "abc", -1},
		{"abc", "ab", 1},
		{"abc\x00zzz", "ABC", 0},
		{"a\x00", "a ", -1},
		{"[", "a", -1}, // '[' (0x5b) vs 'a' (0x61) after folding
		{"_", "A", -1},
	} {
		if got := CompareCaseInsensitive(c.l, c.r); got != c.want {
			t.Fatalf("CompareCaseInsensitive(%q,%q) = %d, want %d", c.l, c.r, got, c.want)
		}
	}
	if !EqualFold("Content-Type", "content-type") || EqualFold("a", "b") {
		t.Fatal("EqualFold mismatch")
	}
}

func TestMultiSzIndex(t *testing.T) {
	const multi = "alpha\x00beta\x00\x00"
	type C struct {
		i    uint
		want string
		ok   bool
	}
	for _, c := range []C{
		{0, "alpha", true},
		{1, "beta", true},
		{2, "", false},
		{99, "", false},
	} {
		got, ok := MultiSzIndex(multi, c.i)
		if got != c.want || ok != c.ok {
			t.Fatalf("MultiSzIndex(%d) = %q,%v want %q,%v", c.i, got, ok, c.want, c.ok)
		}
	}
}

func TestMultiSzEdges(t *testing.T) {
	if _, ok := MultiSzIndex("", 0); ok {
		t.Fatal("empty list should have no entries")
	}
	if _, ok := MultiSzIndex("\x00", 0); ok {
		t.Fatal("lone terminator should have no entries")
	}
	// Missing final terminators: the end of the Go string closes the list.
	if s, ok := MultiSzIndex("one\x00two", 1); !ok || s != "two" {
		t.Fatalf("unterminated tail = %q,%v", s, ok)
	}
	if _, ok := MultiSzIndex("one\x00two", 2); ok {
		t.Fatal("index past unterminated tail should fail")
	}
	// Entries after the empty string are not part of the list.
	if _, ok := MultiSzIndex("a\x00\x00b\x00\x00", 1); ok {
		t.Fatal("walked past the end marker")
	}

	type C struct {
		multi string
		want  int
	}
	for _, c := range []C{
		{"", 0}, {"\x00", 0}, {"a\x00\x00", 1}, {"alpha\x00beta\x00\x00", 2}, {"one\x00two", 2},
	} {
		if got := MultiSzCount(c.multi); got != c.want {
			t.Fatalf("MultiSzCount(%q) = %d, want %d", c.multi, got, c.want)
		}
	}
}
