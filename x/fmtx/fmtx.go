// Package fmtx is a bounded printf for fixed buffers.
//
// It does not call into fmt, so output is byte-for-byte the same on every
// host and under TinyGo. Supported: %d %i %u %x %X %o %c %s %p %%, the flags
// "-0+ #", width and precision (digits or '*'). C length modifiers (h, l, ll,
// z, j, t, L, q) are accepted and ignored. Anything else is copied through
// verbatim.
package fmtx

import (
	"baselib-go/x/bufx"
	"baselib-go/x/charx"
	"baselib-go/x/conv"
	"baselib-go/x/mathx"
)

// Snprintf formats into dest at off and returns the logical length; see
// Vsnprintf.
func Snprintf(dest []byte, off int, format string, args ...any) int {
	return Vsnprintf(dest, off, format, args)
}

// Vsnprintf formats args according to format into dest, starting at off.
//
// Like the bufx writers it never writes past dest, keeps room for a NUL
// terminator, and returns off plus the full formatted length. A result
// >= len(dest) means the output was truncated.
func Vsnprintf(dest []byte, off int, format string, args []any) int {
	if off < 0 {
		off = 0
	}
	p := printer{dest: dest, n: off, args: args}
	p.doPrintf(format)
	bufx.Terminate(dest, off, p.n)
	return p.n
}

type printer struct {
	dest []byte
	n    int // logical position
	args []any
	ai   int
}

// directive is one parsed %-conversion.
type directive struct {
	minus, plus, space, zero, sharp bool

	width   int
	prec    int
	hasPrec bool
	verb    byte
}

func (p *printer) byte(c byte) {
	if p.n < len(p.dest)-1 {
		p.dest[p.n] = c
	}
	p.n++
}

func (p *printer) str(s string) {
	for i := 0; i < len(s); i++ {
		p.byte(s[i])
	}
}

func (p *printer) pad(c byte, k int) {
	for ; k > 0; k-- {
		p.byte(c)
	}
}

func (p *printer) peek() any {
	if p.ai >= len(p.args) {
		return nil
	}
	return p.args[p.ai]
}

func (p *printer) next() any {
	if p.ai >= len(p.args) {
		return nil
	}
	a := p.args[p.ai]
	p.ai++
	return a
}

func (p *printer) doPrintf(format string) {
	for i := 0; i < len(format); {
		if format[i] != '%' {
			p.byte(format[i])
			i++
			continue
		}
		start := i
		var d directive
		i = p.parseDirective(format, i+1, &d)
		if i >= len(format) {
			// Dangling directive: echo what we have.
			p.str(format[start:])
			return
		}
		d.verb = format[i]
		i++
		switch d.verb {
		case '%':
			p.byte('%')
		case 'd', 'i':
			mag, neg := signedArg(p.next())
			p.fmtInteger(&d, mag, neg, 10, false)
		case 'u':
			p.fmtInteger(&d, unsignedArg(p.next()), false, 10, false)
		case 'x':
			p.fmtInteger(&d, unsignedArg(p.next()), false, 16, false)
		case 'X':
			p.fmtInteger(&d, unsignedArg(p.next()), false, 16, true)
		case 'o':
			p.fmtInteger(&d, unsignedArg(p.next()), false, 8, false)
		case 'p':
			d.sharp = true
			p.fmtInteger(&d, unsignedArg(p.next()), false, 16, false)
		case 'c':
			p.fmtC(&d, byte(unsignedArg(p.next())))
		case 's':
			if b, ok := p.peek().([]byte); ok {
				p.next()
				fmtS(p, &d, b)
			} else {
				fmtS(p, &d, stringArg(p.next()))
			}
		default:
			// Unknown conversion: copy the whole directive through.
			p.str(format[start:i])
		}
	}
}

// parseDirective reads flags, width, precision and length modifiers starting
// just after the '%'. It returns the index of the conversion byte, or
// len(format) if the format ends first.
func (p *printer) parseDirective(format string, i int, d *directive) int {
flags:
	for ; i < len(format); i++ {
		switch format[i] {
		case '-':
			d.minus = true
		case '+':
			d.plus = true
		case ' ':
			d.space = true
		case '0':
			d.zero = true
		case '#':
			d.sharp = true
		default:
			break flags
		}
	}

	if i < len(format) && format[i] == '*' {
		w, neg := signedArg(p.next())
		d.minus = d.minus || neg
		d.width = capWidth(w)
		i++
	} else {
		i = parseNum(format, i, &d.width)
	}

	if i < len(format) && format[i] == '.' {
		i++
		d.hasPrec = true
		if i < len(format) && format[i] == '*' {
			pr, neg := signedArg(p.next())
			d.prec = capWidth(pr)
			d.hasPrec = !neg
			i++
		} else {
			i = parseNum(format, i, &d.prec)
		}
	}

	for i < len(format) && isLengthModifier(format[i]) {
		i++
	}
	return i
}

func isLengthModifier(c byte) bool {
	switch c {
	case 'h', 'l', 'z', 'j', 't', 'L', 'q':
		return true
	}
	return false
}

func parseNum(s string, i int, out *int) int {
	n := 0
	for i < len(s) && charx.IsDigit(s[i]) {
		if n < maxWidth {
			n = n*10 + int(s[i]-'0')
		}
		i++
	}
	*out = mathx.Min(n, maxWidth)
	return i
}

// maxWidth caps width and precision so a hostile format cannot spin for
// billions of pad bytes.
const maxWidth = 4096

func capWidth(w uint64) int {
	if w > maxWidth {
		return maxWidth
	}
	return int(w)
}

func (p *printer) fmtInteger(d *directive, mag uint64, neg bool, base int, upper bool) {
	var buf [conv.MaxDigits]byte
	digits := conv.FormatUint(buf[:], mag, base, upper)
	if d.hasPrec && d.prec == 0 && mag == 0 {
		digits = digits[:0]
	}

	var sign byte
	if d.verb == 'd' || d.verb == 'i' {
		switch {
		case neg:
			sign = '-'
		case d.plus:
			sign = '+'
		case d.space:
			sign = ' '
		}
	}

	prefix := ""
	zeros := 0
	if d.hasPrec {
		zeros = mathx.Max(d.prec-len(digits), 0)
	}
	if d.sharp {
		switch {
		case base == 8:
			if zeros == 0 && (len(digits) == 0 || digits[0] != '0') {
				zeros = 1
			}
		case d.verb == 'p':
			prefix = "0x"
		case base == 16 && mag != 0:
			prefix = "0x"
			if upper {
				prefix = "0X"
			}
		}
	}

	body := len(prefix) + zeros + len(digits)
	if sign != 0 {
		body++
	}
	padding := mathx.Max(d.width-body, 0)
	if d.zero && !d.minus && !d.hasPrec {
		zeros += padding
		padding = 0
	}

	if !d.minus {
		p.pad(' ', padding)
	}
	if sign != 0 {
		p.byte(sign)
	}
	p.str(prefix)
	p.pad('0', zeros)
	for _, c := range digits {
		p.byte(c)
	}
	if d.minus {
		p.pad(' ', padding)
	}
}

func (p *printer) fmtC(d *directive, c byte) {
	padding := mathx.Max(d.width-1, 0)
	if !d.minus {
		p.pad(' ', padding)
	}
	p.byte(c)
	if d.minus {
		p.pad(' ', padding)
	}
}

func fmtS[T ~string | ~[]byte](p *printer, d *directive, s T) {
	n := cLen(s)
	if d.hasPrec {
		n = mathx.Min(n, d.prec)
	}
	padding := mathx.Max(d.width-n, 0)
	if !d.minus {
		p.pad(' ', padding)
	}
	for i := 0; i < n; i++ {
		p.byte(s[i])
	}
	if d.minus {
		p.pad(' ', padding)
	}
}
