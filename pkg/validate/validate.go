// Package validate holds the form-input predicates shared by the auth
// service and API layer.
package validate

import "regexp"

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[\d\s()-]{10,}$`)

	// at least one lower, one upper, one digit, length 8+
	strongPasswordRe = regexp.MustCompile(`^[a-zA-Z\d@$!%*?&]{8,}$`)
	lowerRe          = regexp.MustCompile(`[a-z]`)
	upperRe          = regexp.MustCompile(`[A-Z]`)
	digitRe          = regexp.MustCompile(`\d`)
)

func Email(email string) bool {
	return emailRe.MatchString(email)
}

func Phone(phone string) bool {
	return phoneRe.MatchString(phone)
}

func StrongPassword(password string) bool {
	return strongPasswordRe.MatchString(password) &&
		lowerRe.MatchString(password) &&
		upperRe.MatchString(password) &&
		digitRe.MatchString(password)
}
