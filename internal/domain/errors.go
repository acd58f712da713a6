package domain

import (
	"errors"
	"fmt"
)

// MsgBadCredentials is returned for every failed authentication attempt,
// whether the username is unknown or the password is wrong.
const MsgBadCredentials = "Provided username or password is incorrect."

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Msg string
	Err error
}

func (e ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// ConflictError signals a referential-integrity delete failure: the entity
// exists but is still referenced by dependent rows.
type ConflictError struct {
	Resource string
	Err      error
}

func (e ConflictError) Error() string {
	if e.Resource == "" {
		return "conflict"
	}
	return fmt.Sprintf("%s cannot be deleted because it is being referenced by other entities.", e.Resource)
}

func (e ConflictError) Unwrap() error { return e.Err }

// AuthError covers failed credential checks. The message never reveals
// whether the username exists.
type AuthError struct {
	Err error
}

func (e AuthError) Error() string { return MsgBadCredentials }

func (e AuthError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsAuth(err error) bool {
	var target AuthError
	return errors.As(err, &target)
}
