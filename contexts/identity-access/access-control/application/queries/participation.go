package queries

import (
	"context"

	"votingsystem/contexts/identity-access/access-control/application"
	"votingsystem/contexts/identity-access/access-control/domain/entities"
	"votingsystem/contexts/identity-access/access-control/ports"
)

// VotingStatus pairs an election with whether the voter has voted in it.
type VotingStatus struct {
	Election ports.ElectionView
	Voted    bool
}

// ParticipationUseCase answers a voter's or candidate's questions about
// their own participation. The subject is always the principal itself.
type ParticipationUseCase struct {
	Guard    application.Guard
	Registry ports.Registry
	Ledger   ports.Ledger
}

func (uc ParticipationUseCase) VotingStatus(ctx context.Context, principal entities.Principal) ([]VotingStatus, error) {
	resolved, err := uc.Guard.Authorize(ctx, principal, entities.CapabilityVoteStatus)
	if err != nil {
		return nil, err
	}
	elections, err := uc.Registry.ListElections(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]VotingStatus, 0, len(elections))
	for _, election := range elections {
		voted, err := uc.Ledger.HasVoted(ctx, election.ElectionID, resolved.ActorID)
		if err != nil {
			return nil, err
		}
		items = append(items, VotingStatus{Election: election, Voted: voted})
	}
	return items, nil
}

func (uc ParticipationUseCase) HasVoted(ctx context.Context, principal entities.Principal, electionID int64) (bool, error) {
	resolved, err := uc.Guard.Authorize(ctx, principal, entities.CapabilityVoteStatus)
	if err != nil {
		return false, err
	}
	return uc.Ledger.HasVoted(ctx, electionID, resolved.ActorID)
}

// MyElections lists the elections whose roster holds the candidate.
func (uc ParticipationUseCase) MyElections(ctx context.Context, principal entities.Principal) ([]ports.ElectionView, error) {
	resolved, err := uc.Guard.Authorize(ctx, principal, entities.CapabilityCandidateElection)
	if err != nil {
		return nil, err
	}
	return uc.Registry.ElectionsForCandidate(ctx, resolved.ActorID)
}

// MyTally counts the votes the candidate received in one election.
func (uc ParticipationUseCase) MyTally(ctx context.Context, principal entities.Principal, electionID int64) (int, error) {
	resolved, err := uc.Guard.Authorize(ctx, principal, entities.CapabilityCandidateTally)
	if err != nil {
		return 0, err
	}
	return uc.Ledger.VotesForCandidate(ctx, electionID, resolved.ActorID)
}
