package errors

import (
	"fmt"

	"votingsystem/contexts/election-management/election-registry/domain/entities"
	"votingsystem/contracts/faults"
)

var (
	ErrInvalidElectionID   = faults.New(faults.KindValidationFailed, "invalid election id")
	ErrEmptyTitle          = faults.New(faults.KindValidationFailed, "election title is empty")
	ErrDuplicateElectionID = faults.New(faults.KindConflict, "election id already exists")
	ErrElectionNotFound    = faults.New(faults.KindNotFound, "election not found")
	ErrInvalidTransition   = faults.New(faults.KindInvalidTransition, "invalid election status transition")
	ErrNotACandidate       = faults.New(faults.KindValidationFailed, "actor is not a candidate")
	ErrAlreadyOnRoster     = faults.New(faults.KindConflict, "candidate already on roster")
	ErrNotOnRoster         = faults.New(faults.KindNotFound, "candidate not on roster")
)

// TransitionError reports a refused lifecycle move together with the status
// the election is currently in.
type TransitionError struct {
	ElectionID int64
	Current    entities.Status
	Target     entities.Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("election %d is %s, cannot move to %s", e.ElectionID, e.Current, e.Target)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
