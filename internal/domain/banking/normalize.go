package banking

import "strings"

// NormalizeEmail returns the canonical form of an email address used for
// uniqueness comparison: surrounding whitespace removed and lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeSSNTin returns the canonical form of an SSN/TIN used for
// uniqueness comparison: surrounding whitespace removed, uppercased, and
// every non-alphanumeric character stripped. "123-45-6789" and
// "123 45 6789" normalize to the same value.
func NormalizeSSNTin(ssnTin string) string {
	trimmed := strings.ToUpper(strings.TrimSpace(ssnTin))
	var b strings.Builder
	b.Grow(len(trimmed))
	for _, r := range trimmed {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
