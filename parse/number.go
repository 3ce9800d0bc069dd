package parse

import "strconv"

// ScanFloat is the default NumberFunc for float64: it scans the longest
// leading decimal literal (sign, digits, fraction, optional exponent)
// and reports ok=false when the input does not start with one. No
// failure is possible — "no number here" is a normal answer.
func ScanFloat(s string) (float64, int, bool) {
	n := scanFloatLen(s)
	if n == 0 {
		return 0, 0, false
	}
	v, err := strconv.ParseFloat(s[:n], 64)
	if err != nil {
		return 0, 0, false
	}
	return v, n, true
}

// scanFloatLen returns the byte length of the leading decimal literal,
// 0 when there is none. The scan is conservative: an exponent marker is
// only consumed when digits follow it, so "2e" scans as "2" and leaves
// "e" for the symbol lexer.
func scanFloatLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}

	// Optional exponent, consumed only when well-formed.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}
	return i
}
