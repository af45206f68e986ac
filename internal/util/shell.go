// Package util provides common utility functions used across the codebase.
package util

import "strings"

// ShellQuote wraps a string in single quotes, escaping any existing single quotes.
// This is safe for use in shell commands where the string should be treated literally.
func ShellQuote(s string) string {
	// Replace ' with '\'' (end quote, escaped quote, start quote)
	escaped := strings.ReplaceAll(s, "'", "'\\''")
	return "'" + escaped + "'"
}

// safeShellChars are characters that never need quoting in a shell word.
const safeShellChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_@%+=:,./-"

// needsShellQuote reports whether a shell word requires quoting.
func needsShellQuote(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if !strings.ContainsRune(safeShellChars, r) {
			return true
		}
	}
	return false
}

// ShellJoin assembles argv into a single shell command line, quoting any
// argument that contains characters the shell would interpret. Arguments that
// are already plain words pass through unchanged, so a command like
// "make test" round-trips as typed.
func ShellJoin(args []string) string {
	words := make([]string, len(args))
	for i, arg := range args {
		if needsShellQuote(arg) {
			words[i] = ShellQuote(arg)
		} else {
			words[i] = arg
		}
	}
	return strings.Join(words, " ")
}
