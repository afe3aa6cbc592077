package utils

import "regexp"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail mirrors the client-side check: non-empty local part,
// an @, and a dotted domain. Not a full RFC 5322 parse.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
