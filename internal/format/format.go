// Package format applies the resolved output style to canonical UUID
// strings: full (36-character hyphenated) versus simple (32-character
// unhyphenated), and lowercase versus uppercase hex. All functions are
// pure and total over well-formed canonical input.
package format

import "strings"

// Apply renders a canonical lowercase hyphenated UUID string in the
// requested style. With full=false the four hyphens are stripped,
// leaving 32 hex characters. With upper=true all hex letters are
// uppercased. The input itself is never validated here; the generator
// only ever hands over canonical strings.
func Apply(canonical string, full, upper bool) string {
	out := canonical
	if !full {
		out = strings.ReplaceAll(out, "-", "")
	}
	if upper {
		out = strings.ToUpper(out)
	}
	return out
}
