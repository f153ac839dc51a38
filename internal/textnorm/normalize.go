// Package textnorm canonicalizes raw transaction descriptions for
// matching and training. The exact same normalization must run at
// training time and at prediction time; any divergence between the two
// silently degrades model accuracy.
package textnorm

import "strings"

// Normalize lowercases the input, replaces digit runs and any
// non-alphabetic characters with spaces, collapses whitespace runs and
// trims. It is pure and idempotent. Empty or all-numeric input
// normalizes to the empty string, which callers must treat as
// unclassifiable by the statistical layer.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	space := true // collapse leading whitespace
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
			space = false
			continue
		}
		// Digits, punctuation and whitespace all become a single
		// separating space.
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}

	return strings.TrimRight(b.String(), " ")
}

// Terms splits a normalized description into classifier terms. An
// empty slice means the description carries no usable signal.
func Terms(normalized string) []string {
	return strings.Fields(normalized)
}
