package models

import "errors"

var (
	// ErrNotFound signals that a record with the requested id or key does
	// not exist. Callers treat it as the normal failure path, not a fault.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials signals a failed login. No distinction is made
	// between a wrong email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
