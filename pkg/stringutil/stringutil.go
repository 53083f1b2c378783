// Package stringutil holds byte-oriented text helpers.
//
// Case folding only knows about ASCII letters; any other byte, including
// bytes of multi-byte UTF-8 sequences, is copied unchanged.
package stringutil

import "strings"

const blank = " \t\n\r"

// ToUpper maps a-z to A-Z, byte by byte.
func ToUpper(s string) string {
	return mapBytes(s, func(c byte) byte {
		if 'a' <= c && c <= 'z' {
			return c - ('a' - 'A')
		}
		return c
	})
}

// ToLower maps A-Z to a-z, byte by byte.
func ToLower(s string) string {
	return mapBytes(s, func(c byte) byte {
		if 'A' <= c && c <= 'Z' {
			return c + ('a' - 'A')
		}
		return c
	})
}

// Trim drops leading and trailing spaces, tabs, newlines and carriage returns.
func Trim(s string) string {
	return strings.Trim(s, blank)
}

// StartsWith reports whether s begins with prefix, byte for byte.
func StartsWith(s, prefix string) bool {
	if len(prefix) > len(s) {
		return false
	}
	return s[:len(prefix)] == prefix
}

// EndsWith reports whether s ends with suffix, byte for byte.
func EndsWith(s, suffix string) bool {
	if len(suffix) > len(s) {
		return false
	}
	return s[len(s)-len(suffix):] == suffix
}

func mapBytes(s string, f func(byte) byte) string {
	buf := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		buf[i] = f(s[i])
	}
	return string(buf)
}
