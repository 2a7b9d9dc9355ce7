package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// statusError is a huma error answered to clients that keeps the
// service failure behind it for error handlers.
type statusError struct {
	huma.StatusError
	cause error
}

var _ huma.ContentTypeFilter = (*statusError)(nil)

func (e *statusError) Unwrap() error { return e.cause }

func (e *statusError) MarshalJSON() ([]byte, error) { return json.Marshal(e.StatusError) }

func (e *statusError) ContentType(ct string) string {
	if ctf, ok := e.StatusError.(huma.ContentTypeFilter); ok {
		return ctf.ContentType(ct)
	}
	return ct
}

// badRequest answers the message of err with 400.
func badRequest(err error) error {
	return &statusError{huma.Error400BadRequest(err.Error()), err}
}

func notFound(msg string, cause error) error {
	return &statusError{huma.Error404NotFound(msg), cause}
}

var humaNewError = huma.NewError //nolint: gochecknoglobals // original constructor

// NewError replaces [huma.NewError] so that request bodies and path
// parameters huma cannot bind are answered with 400 like any other
// rejected contact, instead of 422.
func NewError(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status, msg = http.StatusBadRequest, msgValidationFailed
	}
	return humaNewError(status, msg, errs...)
}
