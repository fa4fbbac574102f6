// Package slug derives URL-safe identifiers from display names.
package slug

import "strings"

// Make converts any string into a slug: lowercase, whitespace to
// hyphens, everything outside [a-z0-9-] stripped, repeated hyphens
// collapsed, leading and trailing hyphens trimmed. Total over all
// inputs; the result may be empty.
func Make(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r', r == '-':
			b.WriteByte('-')
		}
	}

	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return strings.Trim(out, "-")
}
