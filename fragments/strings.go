package fragments

import (
	"strings"
	"unicode/utf8"
)

// isValidDBusString reports whether s is valid UTF-8 with no embedded
// NUL byte, the syntax rule for the D-Bus "s" basic type. The wire
// NUL terminator is consumed separately and is not part of s.
func isValidDBusString(s string) bool {
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}

// isValidObjectPath reports whether s satisfies D-Bus object path
// syntax: an ASCII string beginning with '/', composed of
// '/'-separated segments of [A-Za-z0-9_]+, with no trailing slash
// unless s is exactly "/".
func isValidObjectPath(s string) bool {
	if !isValidDBusString(s) {
		return false
	}
	if s == "/" {
		return true
	}
	if s == "" || s[0] != '/' || s[len(s)-1] == '/' {
		return false
	}
	for _, seg := range strings.Split(s[1:], "/") {
		if seg == "" {
			return false
		}
		for _, r := range seg {
			switch {
			case r >= 'a' && r <= 'z':
			case r >= 'A' && r <= 'Z':
			case r >= '0' && r <= '9':
			case r == '_':
			default:
				return false
			}
		}
	}
	return true
}
