package strconvx

import (
	"math"
	"testing"

	"baselib-go/errcode"
	"baselib-go/x/conv"
)

func TestParseUint(t *testing.T) {
	type C struct {
		s       string
		base    int
		bitSize int
		want    uint64
	}
	for _, c := range []C{
		{"0", 0, 64, 0},
		{"101", 2, 64, 5},
		{"0xff", 0, 64, 255},
		{"0777", 0, 64, 511},
		{"FF", 16, 8, 255},
		{"65535", 10, 16, 65535},
		{"4294967295", 10, 32, math.MaxUint32},
		{"18446744073709551615", 10, 0, math.MaxUint64},
	} {
		got, err := ParseUint(c.s, c.base, c.bitSize)
		if err != nil {
			t.Fatalf("ParseUint(%q,%d,%d) error: %v", c.s, c.base, c.bitSize, err)
		}
		if got != c.want {
			t.Fatalf("ParseUint(%q,%d,%d) = %d, want %d", c.s, c.base, c.bitSize, got, c.want)
		}
	}
}

func TestParseUintErrors(t *testing.T) {
	type C struct {
		s       string
		base    int
		bitSize int
		code    errcode.Code
	}
	for _, c := range []C{
		{"", 10, 64, errcode.NoDigits},
		{"g", 16, 64, errcode.NoDigits},
		{"12x", 10, 64, errcode.InvalidSyntax},
		{"0x", 0, 64, errcode.InvalidSyntax},
		{" 1", 10, 64, errcode.NoDigits},
		{"256", 10, 8, errcode.Overflow},
		{"4294967296", 10, 32, errcode.Overflow},
		{"18446744073709551616", 10, 64, errcode.Overflow},
		{"1", 1, 64, errcode.InvalidBase},
		{"1", 37, 64, errcode.InvalidBase},
	} {
		_, err := ParseUint(c.s, c.base, c.bitSize)
		if got := errcode.Of(err); got != c.code {
			t.Fatalf("ParseUint(%q,%d,%d) code = %q, want %q", c.s, c.base, c.bitSize, got, c.code)
		}
	}
	v, err := ParseUint("300", 10, 8)
	if err == nil || v != math.MaxUint8 {
		t.Fatalf("overflow should clamp: %d %v", v, err)
	}
}

func TestParseIntSignsAndLimits(t *testing.T) {
	type C struct {
		s    string
		base int
		want int64
	}
	for _, c := range []C{
		{"+10", 10, 10},
		{"-10", 10, -10},
		{"-0", 10, 0},
		{"-0x0f", 0, -15},
		{"9223372036854775807", 10, math.MaxInt64},
		{"-9223372036854775808", 10, math.MinInt64},
	} {
		got, err := ParseInt(c.s, c.base, 64)
		if err != nil {
			t.Fatalf("ParseInt(%q,%d) error: %v", c.s, c.base, err)
		}
		if got != c.want {
			t.Fatalf("ParseInt(%q,%d) = %d, want %d", c.s, c.base, got, c.want)
		}
	}

	v, err := ParseInt("9223372036854775808", 10, 64)
	if errcode.Of(err) != errcode.Overflow || v != math.MaxInt64 {
		t.Fatalf("positive overflow = %d %v", v, err)
	}
	v, err = ParseInt("-18446744073709551616", 10, 64)
	if errcode.Of(err) != errcode.Overflow || v != math.MinInt64 {
		t.Fatalf("negative overflow = %d %v", v, err)
	}
	v, err = ParseInt("-129", 10, 8)
	if errcode.Of(err) != errcode.Overflow || v != -128 {
		t.Fatalf("int8 overflow = %d %v", v, err)
	}
	if _, err := ParseInt("-", 10, 64); errcode.Of(err) != errcode.NoDigits {
		t.Fatalf("lone sign = %v", err)
	}
}

func TestAtoi(t *testing.T) {
	for _, v := range []int{0, 1, -1, 42, -99999} {
		var buf [20]byte
		s := string(conv.Itoa(buf[:], int64(v)))
		got, err := Atoi(s)
		if err != nil {
			t.Fatalf("Atoi(%q) error: %v", s, err)
		}
		if got != v {
			t.Fatalf("Atoi(%q) = %d, want %d", s, got, v)
		}
	}
	if _, err := Atoi("12a"); errcode.Of(err) != errcode.InvalidSyntax {
		t.Fatalf("Atoi(12a) = %v", err)
	}
}
