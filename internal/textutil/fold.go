package textutil

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the Unicode case-folded form of s, suitable for
// case-insensitive comparison ("Straße" and "STRASSE" fold identically).
func Fold(s string) string {
	return cases.Fold().String(s)
}

// EqualFold reports whether a and b are equal under full Unicode case folding
// after surrounding whitespace is trimmed.
func EqualFold(a, b string) bool {
	return Fold(strings.TrimSpace(a)) == Fold(strings.TrimSpace(b))
}

// ContainsFold reports whether substr occurs in s under case folding.
// An empty substr matches everything.
func ContainsFold(s, substr string) bool {
	substr = strings.TrimSpace(substr)
	if substr == "" {
		return true
	}
	return strings.Contains(Fold(s), Fold(substr))
}

// CollapseSpace trims s and reduces interior whitespace runs to one space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
