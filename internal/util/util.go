package util

import "unicode/utf8"

// Backquote surrounds the given string in backquotes
func Backquote(s string) string {
	// XXX Does this require escaping
	return "`" + s + "`"
}

// Truncate shortens s to at most n runes, appending "..." when
// anything was cut off. n <= 0 disables truncation.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}

	var i, count int
	for i = range s {
		if count == n {
			break
		}
		count++
	}
	return s[:i] + "..."
}
