package catalog

import "golang.org/x/text/cases"

// Fold returns the case-folded form of s. Every case-insensitive comparison
// of record values, option values and names goes through it, so a final
// sigma and a medial one compare equal.
func Fold(s string) string {
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Fold().String(s)
}
