package dedupe

import "strings"

// NormalizePhone reduces a raw phone to its national digit form: digits only,
// leading country code 55 dropped when the length implies one, and a final
// length of 10 or 11. Anything else is unusable as a dedupe key and yields "".
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	digits := b.String()

	if (len(digits) == 12 || len(digits) == 13) && strings.HasPrefix(digits, "55") {
		digits = digits[2:]
	}
	if len(digits) != 10 && len(digits) != 11 {
		return ""
	}
	return digits
}

// NormalizeEmail lowercases and trims; addresses without both "@" and "."
// are unusable as keys.
func NormalizeEmail(raw string) string {
	norm := strings.ToLower(strings.TrimSpace(raw))
	if !strings.Contains(norm, "@") || !strings.Contains(norm, ".") {
		return ""
	}
	return norm
}

// NormalizeName lowercases, trims, and collapses internal whitespace.
func NormalizeName(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), " "))
}
