package dmitype

import "math"

// scanner walks a numeric --type argument one literal at a time. Literals
// follow strtoul(3) with base 0 and are separated by runs of ',' or ' '.
type scanner struct {
	s   string
	pos int
}

func newScanner(s string) *scanner {
	return &scanner{s: s}
}

// done reports whether the whole input has been consumed
func (sc *scanner) done() bool {
	return sc.pos >= len(sc.s)
}

// next parses the literal at the cursor, then skips trailing separators
func (sc *scanner) next() (uint8, error) {
	rest := sc.s[sc.pos:]
	val, n := parseUint(rest)
	if n == 0 {
		return 0, &InvalidTypeError{Token: rest}
	}
	if val > math.MaxUint8 {
		return 0, &InvalidTypeError{Value: val, Numeric: true}
	}

	sc.pos += n
	for sc.pos < len(sc.s) && isSeparator(sc.s[sc.pos]) {
		sc.pos++
	}
	return uint8(val), nil
}

// parseUint converts the leading unsigned integer of s the way strtoul
// does with base 0. It returns the value and the number of bytes consumed;
// n is 0 when s does not start with a number. Negative input wraps and
// overflow saturates at math.MaxUint64.
func parseUint(s string) (val uint64, n int) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	base := uint64(10)
	if i < len(s) && s[i] == '0' {
		base = 8
		// "0x" only counts as a prefix when a hex digit follows
		if i+2 < len(s) && (s[i+1] == 'x' || s[i+1] == 'X') && digitVal(s[i+2]) < 16 {
			base = 16
			i += 2
		}
	}

	start := i
	overflow := false
	for ; i < len(s); i++ {
		d := digitVal(s[i])
		if d >= base {
			break
		}
		if overflow || val > (math.MaxUint64-d)/base {
			overflow = true
			continue
		}
		val = val*base + d
	}
	if i == start {
		return 0, 0
	}

	if overflow {
		return math.MaxUint64, i
	}
	if neg {
		val = -val
	}
	return val, i
}

func digitVal(c byte) uint64 {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0')
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 10
	}
	return math.MaxUint64
}

func isSeparator(c byte) bool {
	return c == ',' || c == ' '
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
