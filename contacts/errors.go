package contacts

import (
	"errors"

	"github.com/oaiiae/contacts-api/datastores"
)

// Kinds of service failures, matched with [errors.Is].
var (
	ErrInvalidArgument = errors.New("contacts: invalid argument")
	ErrConflict        = errors.New("contacts: conflict")
	ErrNotFound        = errors.New("contacts: not found")
	ErrIO              = datastores.ErrIO
)

// Error is a service failure. Its message is meant for clients.
type Error struct {
	kind  error
	msg   string
	cause error
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

var (
	errNamesRequired = &Error{kind: ErrInvalidArgument, msg: "First Name and Last Name are required."}
	errEmailFormat   = &Error{kind: ErrInvalidArgument, msg: "Invalid email format."}
	errEmailTaken    = &Error{kind: ErrConflict, msg: "Email must be unique."}
	errNotFound      = &Error{kind: ErrNotFound, msg: "Contact not found."}
)

// KindOf names the kind of a service failure in err, or "" when there is none.
func KindOf(err error) string {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrIO):
		return "io"
	default:
		return ""
	}
}
