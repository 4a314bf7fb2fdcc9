package services

import "errors"

var (
	ErrMissingFields       = errors.New("required fields were not filled in")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrWeakPassword        = errors.New("password must be at least 8 characters long")
	ErrDuplicateCredential = errors.New("username or email is already in use")
	ErrUnknownUser         = errors.New("user does not exist")
	ErrBadCredential       = errors.New("username or password is incorrect")
	ErrForbidden           = errors.New("requires ownership or admin role")
	ErrNotFound            = errors.New("no matching records")
)
