package commands

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"votingsystem/contexts/election-management/ballot-ledger/application"
	"votingsystem/contexts/election-management/ballot-ledger/domain/entities"
	domainerrors "votingsystem/contexts/election-management/ballot-ledger/domain/errors"
	"votingsystem/contexts/election-management/ballot-ledger/ports"
	"votingsystem/contracts/faults"
)

type CastVoteCommand struct {
	ElectionID  int64
	VoterID     int64
	CandidateID int64
}

// CastVoteUseCase records a vote. Preconditions are evaluated in a fixed
// order and the first failure is returned without evaluating the rest:
// election exists, election opened, voter exists and is not banned, voter has
// not voted in this election, candidate is on the roster.
type CastVoteUseCase struct {
	Votes     ports.VoteRepository
	Elections ports.ElectionDirectory
	Voters    ports.VoterDirectory
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc CastVoteUseCase) Execute(ctx context.Context, cmd CastVoteCommand) (entities.Vote, error) {
	logger := application.ResolveLogger(uc.Logger)
	keys := []string{
		"election_id", strconv.FormatInt(cmd.ElectionID, 10),
		"voter_id", strconv.FormatInt(cmd.VoterID, 10),
		"candidate_id", strconv.FormatInt(cmd.CandidateID, 10),
	}
	reject := func(err error, reason string) (entities.Vote, error) {
		logger.Warn("vote cast rejected",
			"event", "ledger_vote_cast_rejected",
			"module", "election-management/ballot-ledger",
			"layer", "application",
			"election_id", cmd.ElectionID,
			"voter_id", cmd.VoterID,
			"candidate_id", cmd.CandidateID,
			"reason", reason,
		)
		return entities.Vote{}, faults.Wrap(err, keys...)
	}

	election, found, err := uc.Elections.GetElection(ctx, cmd.ElectionID)
	if err != nil {
		return entities.Vote{}, err
	}
	if !found {
		return reject(domainerrors.ErrElectionNotFound, "election_not_found")
	}
	if !election.IsOpen() {
		return reject(faults.Wrap(domainerrors.ErrElectionNotOpen, "status", election.Status), "election_not_open")
	}

	voter, found, err := uc.Voters.GetVoter(ctx, cmd.VoterID)
	if err != nil {
		return entities.Vote{}, err
	}
	if !found {
		return reject(domainerrors.ErrVoterNotFound, "voter_not_found")
	}
	if voter.Banned {
		return reject(domainerrors.ErrVoterBanned, "voter_banned")
	}

	if _, voted, err := uc.Votes.FindVote(ctx, cmd.ElectionID, cmd.VoterID); err != nil {
		return entities.Vote{}, err
	} else if voted {
		return reject(domainerrors.ErrAlreadyVoted, "already_voted")
	}
	if !election.HasCandidate(cmd.CandidateID) {
		return reject(domainerrors.ErrCandidateNotOnRoster, "candidate_not_on_roster")
	}

	vote, err := uc.Votes.AppendVote(ctx, entities.Vote{
		ElectionID:  cmd.ElectionID,
		VoterID:     cmd.VoterID,
		CandidateID: cmd.CandidateID,
		CastAt:      uc.now(),
	})
	if err != nil {
		return reject(err, "append_refused")
	}

	logger.Info("vote cast",
		"event", "ledger_vote_cast",
		"module", "election-management/ballot-ledger",
		"layer", "application",
		"vote_id", vote.ID,
		"election_id", vote.ElectionID,
		"voter_id", vote.VoterID,
		"candidate_id", vote.CandidateID,
	)
	return vote, nil
}

func (uc CastVoteUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
