package utils

import (
	"strings"
)

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
// Every bullet point runs through this before storage.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
