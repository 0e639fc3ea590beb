package errors

import "votingsystem/contracts/faults"

var (
	ErrEmptyField         = faults.New(faults.KindValidationFailed, "required field is empty")
	ErrInvalidRole        = faults.New(faults.KindValidationFailed, "invalid actor role")
	ErrInvalidActorID     = faults.New(faults.KindValidationFailed, "invalid actor id")
	ErrDuplicateUsername  = faults.New(faults.KindConflict, "username already exists")
	ErrDuplicateEmail     = faults.New(faults.KindConflict, "email already registered")
	ErrDuplicateActorID   = faults.New(faults.KindConflict, "actor id already in use")
	ErrInvalidCredentials = faults.New(faults.KindUnauthorized, "invalid credentials")
	ErrActorNotFound      = faults.New(faults.KindNotFound, "actor not found")
)
