package service

import "regexp"

// emailPattern accepts the common mailbox@domain.tld shape. It is a
// pragmatic filter, not a full RFC 5322 validator.
// More information: https://emailregex.com/index.html
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

func validateEmail(email string) bool {
	return emailPattern.MatchString(email)
}
