package filter

import "strings"

// TokenSeparator splits a selection token into field and value.
const TokenSeparator = ":"

// FormatToken builds the selection token for one field value.
func FormatToken(field, value string) string {
	return field + TokenSeparator + value
}

// ParseToken splits a token at its first separator. ok is false when the
// separator is missing or either side is empty.
func ParseToken(token string) (field, value string, ok bool) {
	field, value, found := strings.Cut(token, TokenSeparator)
	if !found || field == "" || value == "" {
		return "", "", false
	}
	return field, value, true
}
