package models

import "fmt"

// ErrorValidation is a malformed input or a business rule broken on create.
type ErrorValidation struct {
	Field   string
	Message string
}

func (e ErrorValidation) Error() string {
	return e.Message
}

// ErrorPermissionDenied is an authorization DENY.
type ErrorPermissionDenied struct {
	Reason string
}

func (e ErrorPermissionDenied) Error() string {
	return "permission denied: " + e.Reason
}

type ErrorNotFound struct {
	Resource string
	ID       uint
}

func (e ErrorNotFound) Error() string {
	return fmt.Sprintf("%s not found with id %d", e.Resource, e.ID)
}

// ErrorConflict reports a duplicate value in a unique field.
type ErrorConflict struct {
	Field   string
	Message string
}

func (e ErrorConflict) Error() string {
	return e.Message
}

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	return e.Message
}

// ErrorInternalServer wraps a persistence failure. It is never retried.
type ErrorInternalServer struct {
	Err error
}

func (e ErrorInternalServer) Error() string {
	return "storage error: " + e.Err.Error()
}

func (e ErrorInternalServer) Unwrap() error {
	return e.Err
}
