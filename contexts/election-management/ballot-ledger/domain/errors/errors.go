package errors

import "votingsystem/contracts/faults"

var (
	ErrElectionNotFound     = faults.New(faults.KindNotFound, "election not found")
	ErrElectionNotOpen      = faults.New(faults.KindConflict, "election is not open")
	ErrVoterNotFound        = faults.New(faults.KindNotFound, "voter not found")
	ErrVoterBanned          = faults.New(faults.KindUnauthorized, "voter is banned")
	ErrAlreadyVoted         = faults.New(faults.KindConflict, "voter already voted in this election")
	ErrCandidateNotOnRoster = faults.New(faults.KindValidationFailed, "candidate is not on the election roster")
)
