package booking

import "strings"

// localPhoneDigits is the significant digit count of a local subscriber
// number, excluding the leading zero.
const localPhoneDigits = 9

// NormalizePhone reduces a phone number to the canonical local form
// "0XXXXXXXXX". Accepted inputs: the local form itself, the bare nine-digit
// subscriber number, or either prefixed with the 251 country code (with or
// without "+", spaces, dashes or parentheses anywhere).
func NormalizePhone(raw string) (string, bool) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	switch {
	case len(d) == localPhoneDigits+3 && strings.HasPrefix(d, "251"):
		d = d[3:]
	case len(d) == localPhoneDigits+1 && strings.HasPrefix(d, "0"):
		d = d[1:]
	}
	if len(d) != localPhoneDigits {
		return "", false
	}
	return "0" + d, true
}
