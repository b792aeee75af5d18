package verify

import (
	"regexp"
	"strings"
)

// Shape: one or more non-space non-@ chars, then @, then the same, then a
// dot-separated suffix. Deliverability is not the point here, only form.
var formatRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidFormat reports whether email is a syntactically well-formed address.
// Pure and total: empty or malformed input returns false, never an error.
func ValidFormat(email string) bool {
	return formatRe.MatchString(email)
}

// Domain extracts the domain part of an address: everything after the first
// '@', lowercased. Returns "" when there is no '@'.
func Domain(email string) string {
	i := strings.Index(email, "@")
	if i < 0 {
		return ""
	}
	return strings.ToLower(email[i+1:])
}
