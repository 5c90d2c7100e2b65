// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidCredentials signals a failed login.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnauthorized signals a missing or invalid token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden signals a role that may not perform the action.
	ErrForbidden = errors.New("forbidden")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists signals username conflict.
	ErrUserExists = errors.New("user exists")
	// ErrMemberNotFound signals missing member.
	ErrMemberNotFound = errors.New("member not found")
	// ErrMemberExists signals member email conflict.
	ErrMemberExists = errors.New("member exists")
	// ErrDocumentNotFound signals missing library document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrDueNotFound signals missing due.
	ErrDueNotFound = errors.New("due not found")
	// ErrDueAlreadyPaid signals an attempt to pay a settled due.
	ErrDueAlreadyPaid = errors.New("due already paid")
)
