package queries

import (
	"context"

	"votingsystem/contexts/identity-access/access-control/application"
	"votingsystem/contexts/identity-access/access-control/domain/entities"
	"votingsystem/contexts/identity-access/access-control/ports"
)

// CatalogUseCase serves the reads every role, guests included, may perform.
type CatalogUseCase struct {
	Guard    application.Guard
	Registry ports.Registry
	Ledger   ports.Ledger
}

func (uc CatalogUseCase) ListElections(ctx context.Context, principal entities.Principal) ([]ports.ElectionView, error) {
	if _, err := uc.Guard.Authorize(ctx, principal, entities.CapabilityReadElections); err != nil {
		return nil, err
	}
	return uc.Registry.ListElections(ctx)
}

func (uc CatalogUseCase) ElectionDetail(ctx context.Context, principal entities.Principal, electionID int64) (ports.ElectionView, error) {
	if _, err := uc.Guard.Authorize(ctx, principal, entities.CapabilityReadElection); err != nil {
		return ports.ElectionView{}, err
	}
	return uc.Registry.GetElection(ctx, electionID)
}

func (uc CatalogUseCase) ListCandidates(ctx context.Context, principal entities.Principal, electionID int64) ([]ports.ActorView, error) {
	if _, err := uc.Guard.Authorize(ctx, principal, entities.CapabilityListCandidates); err != nil {
		return nil, err
	}
	return uc.Registry.ListCandidates(ctx, electionID)
}

func (uc CatalogUseCase) Rules(ctx context.Context, principal entities.Principal) ([]string, error) {
	if _, err := uc.Guard.Authorize(ctx, principal, entities.CapabilityReadRules); err != nil {
		return nil, err
	}
	return uc.Ledger.Rules(ctx), nil
}
