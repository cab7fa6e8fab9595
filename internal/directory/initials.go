package directory

import (
	"strings"
	"unicode/utf8"
)

// Initials builds the avatar text for a name: first letter of every
// space-separated part, uppercased, at most two characters
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, " ") {
		if r, size := utf8.DecodeRuneInString(part); size > 0 {
			b.WriteRune(r)
		}
	}

	upper := []rune(strings.ToUpper(b.String()))
	if len(upper) > 2 {
		upper = upper[:2]
	}
	return string(upper)
}
