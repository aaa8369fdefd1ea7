package services

import "net/http"

// Kind classifies a service failure so controllers can pick a status
// code without string-matching messages.
type Kind int

const (
	// KindValidation — malformed or missing client input.
	KindValidation Kind = iota
	// KindNotFound — a referenced entity does not exist.
	KindNotFound
	// KindStorage — the object store failed.
	KindStorage
	// KindPersistence — the database failed.
	KindPersistence
	// KindExternalAPI — a third-party API call failed.
	KindExternalAPI
	// KindUnexpected — anything else.
	KindUnexpected
)

// Error is the failure type returned by every service operation.
// The Message is what goes on the wire; downstream error text is
// deliberately passed through to the client (same behaviour the
// frontend already depends on).
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus maps the failure kind to the response status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func validationErr(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func notFoundErr(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func storageErr(msg string, err error) *Error {
	return &Error{Kind: KindStorage, Message: msg, Err: err}
}

func persistenceErr(msg string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: msg, Err: err}
}

func externalAPIErr(msg string, err error) *Error {
	return &Error{Kind: KindExternalAPI, Message: msg, Err: err}
}
