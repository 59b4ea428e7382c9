// Package derive turns normalized upstream records into display view-models.
// Everything here is pure: no I/O, no shared state, inputs are never mutated.
package derive

// LeadingInt parses the leading integer of s the loose way: leading whitespace is skipped,
// an optional sign is accepted and digits are consumed up to the first non-digit.
// Returns 0 if no digits are found, so "25" -> 25, "18.5" -> 18, "3rd" -> 3, "DNF" -> 0.
func LeadingInt(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}

	n, digits := 0, 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		digits++
	}
	if digits == 0 {
		return 0
	}
	if neg {
		return -n
	}
	return n
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
