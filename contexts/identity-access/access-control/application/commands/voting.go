package commands

import (
	"context"
	"log/slog"

	"votingsystem/contexts/identity-access/access-control/application"
	"votingsystem/contexts/identity-access/access-control/domain/entities"
	"votingsystem/contexts/identity-access/access-control/ports"
)

type VotingUseCase struct {
	Guard  application.Guard
	Ledger ports.Ledger
	Logger *slog.Logger
}

// Cast records the principal's own vote. Ban and election checks belong to
// the ledger.
func (uc VotingUseCase) Cast(
	ctx context.Context,
	principal entities.Principal,
	electionID int64,
	candidateID int64,
) (ports.VoteView, error) {
	resolved, err := uc.Guard.Authorize(ctx, principal, entities.CapabilityCastVote)
	if err != nil {
		return ports.VoteView{}, err
	}
	vote, err := uc.Ledger.CastVote(ctx, electionID, resolved.ActorID, candidateID)
	if err != nil {
		return ports.VoteView{}, err
	}
	application.ResolveLogger(uc.Logger).Info("vote delegated",
		"event", "access_vote_cast",
		"module", "identity-access/access-control",
		"layer", "application",
		"actor_id", resolved.ActorID,
		"election_id", vote.ElectionID,
		"vote_id", vote.VoteID,
	)
	return vote, nil
}
