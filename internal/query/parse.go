package query

import (
	"strconv"
	"strings"
)

// ParseDigits parses s as a non-negative integer made only of ASCII digits,
// after trimming surrounding whitespace. Signs, separators, blanks and values
// that overflow int are rejected.
func ParseDigits(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseDecimal parses s as a non-negative decimal number: ASCII digits with
// at most one decimal point and at least one digit, after trimming
// surrounding whitespace. Exponents, signs and repeated points are rejected,
// so "1.", ".5" and "12" parse while "1e3", "-2" and "1.2.3" do not.
func ParseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	digits, dots := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
		default:
			return 0, false
		}
	}
	if digits == 0 || dots > 1 {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
