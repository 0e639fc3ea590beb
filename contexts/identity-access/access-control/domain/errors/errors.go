package errors

import "votingsystem/contracts/faults"

var (
	ErrUnauthorized     = faults.New(faults.KindUnauthorized, "role lacks capability")
	ErrUnknownPrincipal = faults.New(faults.KindUnauthorized, "principal does not resolve to an actor")
	ErrSessionNotFound  = faults.New(faults.KindUnauthorized, "session not found or expired")
	ErrTargetNotVoter   = faults.New(faults.KindValidationFailed, "target actor is not a voter")
)
