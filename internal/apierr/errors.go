// Package apierr defines client-facing errors returned by services and
// rendered by the HTTP layer.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an APIError.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuth
	KindNotFound
	KindConflict
	KindInternal
)

// APIError is an error with a message that is safe to show to clients.
type APIError struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// As extracts an *APIError from err's chain.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsKind reports whether err carries an APIError of the given kind.
func IsKind(err error, kind Kind) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Kind == kind
}

func newError(kind Kind, status int, message string) *APIError {
	return &APIError{Kind: kind, Status: status, Message: message}
}

func NewErrUnauthorized() *APIError {
	return newError(KindAuth, http.StatusUnauthorized, "Unauthorized")
}

func NewErrNotFound() *APIError {
	return newError(KindNotFound, http.StatusNotFound, "Not found")
}

// NewErrMissingField reports a required request field, e.g. "Missing name".
func NewErrMissingField(field string) *APIError {
	return newError(KindValidation, http.StatusBadRequest, "Missing "+field)
}

// NewErrInvalidBody wraps a request body that could not be decoded.
func NewErrInvalidBody(err error) *APIError {
	e := newError(KindValidation, http.StatusBadRequest, "Invalid request body")
	e.Err = err
	return e
}

func NewErrParentNotFound() *APIError {
	return newError(KindValidation, http.StatusBadRequest, "Parent not found")
}

func NewErrParentNotFolder() *APIError {
	return newError(KindValidation, http.StatusBadRequest, "Parent is not a folder")
}

func NewErrFolderHasNoContent() *APIError {
	return newError(KindValidation, http.StatusBadRequest, "A folder doesn't have content")
}

func NewErrAlreadyExist() *APIError {
	return newError(KindConflict, http.StatusBadRequest, "Already exist")
}

// NewErrInternal wraps an unexpected failure; the cause is never shown to clients.
func NewErrInternal(err error) *APIError {
	e := newError(KindInternal, http.StatusInternalServerError, "Internal server error")
	e.Err = err
	return e
}
