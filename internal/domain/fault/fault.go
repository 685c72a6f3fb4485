// Package fault holds the error taxonomy shared by validators, services and
// the HTTP boundary. Every classified failure carries the single message of
// the first failing check; internal causes stay in the server log.
package fault

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

type Kind int

const (
	// Validation - malformed or missing input, detected before any store access.
	Validation Kind = iota
	// Auth - missing or malformed token header.
	Auth
	// NotFound - id does not resolve to a record.
	NotFound
	// Store - backing medium failure on a write path.
	Store
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// HTTPStatus maps the kind onto the response status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case Validation:
		return http.StatusBadRequest
	case Auth:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrInternal is what callers see when persistence fails on a write path.
// The underlying cause is logged server-side and never leaves the process.
var ErrInternal = &Error{Kind: Store, Message: "Erro interno do servidor"}

// ToStatusError converts a classified error into the transport error shape.
// Unclassified errors degrade to the generic 500 message.
func ToStatusError(err error) error {
	var fe *Error
	if errors.As(err, &fe) {
		return huma.NewError(fe.HTTPStatus(), fe.Message)
	}
	return huma.NewError(http.StatusInternalServerError, ErrInternal.Message)
}
