// Package strutil implements small text transformations. Lengths and
// positions are counted in runes, not bytes.
package strutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Ellipsis is appended by Truncate when text is cut.
const Ellipsis = "..."

// Capitalize upper-cases the first character of s and lower-cases the rest.
// The empty string is returned unchanged.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// Reverse returns s with its characters in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// IsPalindrome reports whether s reads the same backwards once lower-cased
// and stripped of everything except ASCII letters and digits.
func IsPalindrome(s string) bool {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, strings.ToLower(s))
	return cleaned == Reverse(cleaned)
}

// CountWords returns the number of whitespace-separated words in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// Truncate returns s unchanged if it has at most maxLength characters;
// otherwise it returns the first maxLength characters followed by Ellipsis.
func Truncate(s string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	return string([]rune(s)[:maxLength]) + Ellipsis
}
