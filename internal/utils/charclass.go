package utils

import (
	"strconv"
	"strings"
)

// IsLowerAlpha reports whether b is an ASCII lowercase letter.
func IsLowerAlpha(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// IsAlpha reports whether b is an ASCII letter of either case.
func IsAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsAlphaString checks that every byte of s is an ASCII letter.
// Empty strings are not alphabetic.
func IsAlphaString(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsAlpha(s[i]) {
			return false
		}
	}
	return true
}

// IsVowel reports whether b is one of a, e, i, o, u.
// 'y' is handled separately by callers that care about it.
func IsVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// HasRepeatedByte reports whether any byte occurs more than once in s.
// Only meaningful for lowercase ASCII input.
func HasRepeatedByte(s string) bool {
	var seen [256]bool
	for i := 0; i < len(s); i++ {
		if seen[s[i]] {
			return true
		}
		seen[s[i]] = true
	}
	return false
}

// FormatWithCommas renders n with thousands separators for CLI output.
func FormatWithCommas(n int) string {
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	head := len(s) % 3
	var b strings.Builder
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
