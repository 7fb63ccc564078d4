package pure_utils

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts a camelCase identifier to its snake_case column form.
// Runs of upper-case letters are treated as a single word ("HTTPCode" -> "http_code").
func ToSnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (!unicode.IsUpper(runes[i-1]) ||
				(i+1 < len(runes) && !unicode.IsUpper(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
