package commands

import (
	"context"
	"log/slog"

	"votingsystem/contexts/identity-access/access-control/application"
	"votingsystem/contexts/identity-access/access-control/domain/entities"
	"votingsystem/contexts/identity-access/access-control/ports"
)

// ElectionAdminUseCase gates election and roster mutations.
type ElectionAdminUseCase struct {
	Guard    application.Guard
	Registry ports.Registry
	Logger   *slog.Logger
}

func (uc ElectionAdminUseCase) Create(ctx context.Context, principal entities.Principal, input ports.ElectionInput) (ports.ElectionView, error) {
	return uc.mutate(ctx, principal, entities.CapabilityCreateElection, func() (ports.ElectionView, error) {
		return uc.Registry.CreateElection(ctx, input)
	})
}

func (uc ElectionAdminUseCase) Update(ctx context.Context, principal entities.Principal, input ports.ElectionInput) (ports.ElectionView, error) {
	return uc.mutate(ctx, principal, entities.CapabilityUpdateElection, func() (ports.ElectionView, error) {
		return uc.Registry.UpdateElection(ctx, input)
	})
}

func (uc ElectionAdminUseCase) Open(ctx context.Context, principal entities.Principal, electionID int64) (ports.ElectionView, error) {
	return uc.mutate(ctx, principal, entities.CapabilityOpenElection, func() (ports.ElectionView, error) {
		return uc.Registry.OpenElection(ctx, electionID)
	})
}

func (uc ElectionAdminUseCase) Close(ctx context.Context, principal entities.Principal, electionID int64) (ports.ElectionView, error) {
	return uc.mutate(ctx, principal, entities.CapabilityCloseElection, func() (ports.ElectionView, error) {
		return uc.Registry.CloseElection(ctx, electionID)
	})
}

func (uc ElectionAdminUseCase) AddCandidate(
	ctx context.Context,
	principal entities.Principal,
	electionID int64,
	candidateID int64,
) (ports.ElectionView, error) {
	return uc.mutate(ctx, principal, entities.CapabilityAddCandidate, func() (ports.ElectionView, error) {
		return uc.Registry.AddCandidate(ctx, electionID, candidateID)
	})
}

func (uc ElectionAdminUseCase) RemoveCandidate(
	ctx context.Context,
	principal entities.Principal,
	electionID int64,
	candidateID int64,
) (ports.ElectionView, error) {
	return uc.mutate(ctx, principal, entities.CapabilityRemoveCandidate, func() (ports.ElectionView, error) {
		return uc.Registry.RemoveCandidate(ctx, electionID, candidateID)
	})
}

func (uc ElectionAdminUseCase) mutate(
	ctx context.Context,
	principal entities.Principal,
	capability entities.Capability,
	delegate func() (ports.ElectionView, error),
) (ports.ElectionView, error) {
	resolved, err := uc.Guard.Authorize(ctx, principal, capability)
	if err != nil {
		return ports.ElectionView{}, err
	}
	election, err := delegate()
	if err != nil {
		return ports.ElectionView{}, err
	}
	application.ResolveLogger(uc.Logger).Info("election mutation delegated",
		"event", "access_election_mutated",
		"module", "identity-access/access-control",
		"layer", "application",
		"actor_id", resolved.ActorID,
		"capability", string(capability),
		"election_id", election.ElectionID,
		"status", election.Status,
	)
	return election, nil
}
