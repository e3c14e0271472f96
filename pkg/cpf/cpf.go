// Package cpf validates Brazilian individual taxpayer numbers (CPF).
package cpf

import "strings"

// Length is the number of digits in a normalized CPF.
const Length = 11

// Normalize strips every character that is not a decimal digit.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Valid reports whether s denotes a structurally and arithmetically valid
// CPF. Punctuation is ignored. Malformed input and checksum failures both
// return false.
func Valid(s string) bool {
	n := Normalize(s)
	if len(n) != Length || repeated(n) {
		return false
	}

	var digits [Length]int
	for i := 0; i < Length; i++ {
		digits[i] = int(n[i] - '0')
	}

	return checkDigit(digits[:9]) == digits[9] && checkDigit(digits[:10]) == digits[10]
}

// checkDigit computes the weighted-sum-mod-11 digit for the given prefix.
// The weight of the first digit is len(prefix)+1; the trailing %10 folds a
// remainder of 10 into 0.
func checkDigit(prefix []int) int {
	weight := len(prefix) + 1
	sum := 0
	for i, d := range prefix {
		sum += d * (weight - i)
	}
	return (sum * 10 % 11) % 10
}

// all-same-digit sequences pass the checksum and must be rejected
func repeated(n string) bool {
	for i := 1; i < len(n); i++ {
		if n[i] != n[0] {
			return false
		}
	}
	return true
}

// Mask hides everything but the last four digits, for logs.
func Mask(s string) string {
	n := Normalize(s)
	if len(n) != Length {
		return "***"
	}
	return "***.***.*" + n[7:9] + "-" + n[9:11]
}
