package utils

import "strings"

// Fold lowercases s and collapses runs of whitespace into single spaces.
// Stop names, alias phrases and lookup keys are all compared in folded form.
func Fold(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
