package queries

import (
	"context"

	"votingsystem/contexts/identity-access/access-control/application"
	"votingsystem/contexts/identity-access/access-control/domain/entities"
	"votingsystem/contexts/identity-access/access-control/ports"
)

type OversightUseCase struct {
	Guard     application.Guard
	Directory ports.Directory
	Ledger    ports.Ledger
}

// ViewVoters lists every voter in registration order, ban flag included.
func (uc OversightUseCase) ViewVoters(ctx context.Context, principal entities.Principal) ([]ports.ActorView, error) {
	if _, err := uc.Guard.Authorize(ctx, principal, entities.CapabilityViewVoters); err != nil {
		return nil, err
	}
	items := make([]ports.ActorView, 0)
	for voter := range uc.Directory.ActorsByRole(ctx, entities.RoleVoter) {
		items = append(items, voter)
	}
	return items, nil
}

func (uc OversightUseCase) ViewResults(ctx context.Context, principal entities.Principal, electionID int64) (ports.TallyView, error) {
	if _, err := uc.Guard.Authorize(ctx, principal, entities.CapabilityViewResults); err != nil {
		return ports.TallyView{}, err
	}
	return uc.Ledger.Tally(ctx, electionID)
}
