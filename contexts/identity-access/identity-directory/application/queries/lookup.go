package queries

import (
	"context"
	"errors"
	"iter"

	"votingsystem/contexts/identity-access/identity-directory/domain/entities"
	domainerrors "votingsystem/contexts/identity-access/identity-directory/domain/errors"
	"votingsystem/contexts/identity-access/identity-directory/ports"
)

type LookupUseCase struct {
	Actors ports.ActorRepository
}

// FindByID reports found=false for unknown ids instead of an error.
func (uc LookupUseCase) FindByID(ctx context.Context, actorID int64) (entities.Actor, bool, error) {
	actor, err := uc.Actors.GetActor(ctx, actorID)
	if errors.Is(err, domainerrors.ErrActorNotFound) {
		return entities.Actor{}, false, nil
	}
	if err != nil {
		return entities.Actor{}, false, err
	}
	return actor, true, nil
}

// ByRole yields actors of one role in registration order. Every range over
// the returned sequence rescans the directory.
func (uc LookupUseCase) ByRole(ctx context.Context, role entities.Role) iter.Seq[entities.Actor] {
	return uc.Actors.ActorsByRole(ctx, role)
}

func (uc LookupUseCase) Count(ctx context.Context) (int, error) {
	return uc.Actors.CountActors(ctx)
}
