// cmd/selftest/main.go
package main

import (
	"time"

	"baselib-go/x/bufx"
	"baselib-go/x/charx"
	"baselib-go/x/fmtx"
	"baselib-go/x/hexdump"
	"baselib-go/x/strconvx"
	"baselib-go/x/strx"
)

// Shared line buffer; checks run one at a time.
var line [96]byte

type check struct {
	name string
	run  func() bool
}

var checks = []check{
	{"parse/decimal", func() bool {
		n, v, ovf := strconvx.BufferToUlong([]byte("12345"), 10)
		return n == 5 && v == 12345 && !ovf
	}},
	{"parse/overflow32", func() bool {
		n, v, ovf := strconvx.BufferToUint32([]byte("4294967296"), 10)
		return n == 10 && v == 0xFFFFFFFF && ovf
	}},
	{"parse/empty", func() bool {
		n, _, _ := strconvx.BufferToUlong(nil, 10)
		return n == 0
	}},
	{"parse/auto", func() bool {
		n, v, _ := strconvx.BufferToUint32([]byte("0x1F,"), 0)
		return n == 4 && v == 31
	}},
	{"snprintf/truncate", func() bool {
		var d [5]byte
		return fmtx.Snprintf(d[:], 0, "%d", 123456) == 6 && bufx.String(d[:]) == "1234"
	}},
	{"snprintf/flags", func() bool {
		n := fmtx.Snprintf(line[:], 0, "[%-4s|%04X|%+d]", "ab", 0xBE, 7)
		return n == 14 && bufx.String(line[:]) == "[ab  |00BE|+7]"
	}},
	{"copy/truncate", func() bool {
		var d [3]byte
		return strx.SafeCopyString(d[:], 0, "hello") == 5 && bufx.String(d[:]) == "he"
	}},
	{"compare/fold", func() bool {
		return strx.CompareCaseInsensitive("ABC", "abc") == 0 && strx.CompareCaseInsensitive("abc", "abd") < 0
	}},
	{"multisz", func() bool {
		const m = "alpha\x00beta\x00\x00"
		a, okA := strx.MultiSzIndex(m, 0)
		b, okB := strx.MultiSzIndex(m, 1)
		_, okC := strx.MultiSzIndex(m, 2)
		return okA && a == "alpha" && okB && b == "beta" && !okC
	}},
	{"charx/white", func() bool {
		return charx.IsWhite(0) && charx.IsWhite(' ') && !charx.IsWhite('!')
	}},
	{"hexdump/line", func() bool {
		var src [16]byte
		for i := range src {
			src[i] = byte(i)
		}
		n := hexdump.FormatDumpLine(line[:], 0, 0, src[:])
		return n == hexdump.LineLen &&
			bufx.String(line[:]) == "00000000 00 01 02 03 04 05 06 07 08 09 0A 0B 0C 0D 0E 0F  ................"
	}},
}

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(bootDelay)
	println("boot")

	failed := 0
	for _, c := range checks {
		status := "ok"
		if !c.run() {
			status = "FAIL"
			failed++
		}
		fmtx.Snprintf(line[:], 0, "%-20s %s", c.name, status)
		println(bufx.String(line[:]))
	}

	fmtx.Snprintf(line[:], 0, "%d/%d passed", len(checks)-failed, len(checks))
	println(bufx.String(line[:]))

	// Exercise the multi-line dump path last.
	var dump [2 * (hexdump.LineLen + 1)]byte
	msg := []byte("baselib selftest")
	hexdump.FormatDump(dump[:], 0, 0, msg)
	println(bufx.String(dump[:]))
}
