// Package contacts manages an address book persisted as one JSON document.
package contacts

import (
	"regexp"
	"strings"
)

type (
	ContactID = int
	Contact   struct {
		ID        ContactID `json:"id"`
		FirstName string    `json:"firstName"`
		LastName  string    `json:"lastName"`
		Email     string    `json:"email"`
	}
)

// emailPattern is local-part, @, domain, dot, tld, without whitespace.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks names before email.
func Validate(c *Contact) error {
	if strings.TrimSpace(c.FirstName) == "" || strings.TrimSpace(c.LastName) == "" {
		return errNamesRequired
	}
	if !emailPattern.MatchString(c.Email) {
		return errEmailFormat
	}
	return nil
}
