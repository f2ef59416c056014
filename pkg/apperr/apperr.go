// Package apperr defines the typed error kinds the service layer returns.
// Controllers hand any error to resp.Error at the boundary; nothing outside
// the repositories and services inspects gorm errors.
package apperr

import "errors"

type Kind int

const (
	Unknown Kind = iota
	RestaurantNotFound
	RestaurantAlreadyExists
	ItemNotFound
	ItemAlreadyExists
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf extracts the kind from an error chain; Unknown for anything that is
// not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
