package commands

import (
	"context"
	"log/slog"

	"votingsystem/contexts/election-management/election-registry/application"
	"votingsystem/contexts/election-management/election-registry/domain/entities"
	domainerrors "votingsystem/contexts/election-management/election-registry/domain/errors"
	"votingsystem/contexts/election-management/election-registry/ports"
	"votingsystem/contracts/faults"
)

// LifecycleUseCase moves elections along Created -> Opened -> Closed.
// A refused move leaves the status unchanged and returns a
// *domainerrors.TransitionError naming the current status.
type LifecycleUseCase struct {
	Elections ports.ElectionRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc LifecycleUseCase) Open(ctx context.Context, electionID int64) (entities.Election, error) {
	return uc.transition(ctx, electionID, entities.StatusOpened)
}

func (uc LifecycleUseCase) Close(ctx context.Context, electionID int64) (entities.Election, error) {
	return uc.transition(ctx, electionID, entities.StatusClosed)
}

func (uc LifecycleUseCase) transition(
	ctx context.Context,
	electionID int64,
	target entities.Status,
) (entities.Election, error) {
	logger := application.ResolveLogger(uc.Logger)

	var from entities.Status
	election, err := uc.Elections.MutateElection(ctx, electionID, func(e *entities.Election) error {
		from = e.Status
		if !e.Status.CanTransitionTo(target) {
			return &domainerrors.TransitionError{
				ElectionID: e.ID,
				Current:    e.Status,
				Target:     target,
			}
		}
		e.Status = target
		e.UpdatedAt = now(uc.Clock)
		return nil
	})
	if err != nil {
		logger.Warn("election status change rejected",
			"event", "registry_election_transition_rejected",
			"module", "election-management/election-registry",
			"layer", "application",
			"election_id", electionID,
			"from_status", string(from),
			"to_status", string(target),
			"error", err.Error(),
		)
		if from != "" {
			return entities.Election{}, faults.Wrap(err, "election_id", idString(electionID), "status", from.String())
		}
		return entities.Election{}, faults.Wrap(err, "election_id", idString(electionID))
	}

	logger.Info("election status changed",
		"event", "registry_election_status_changed",
		"module", "election-management/election-registry",
		"layer", "application",
		"election_id", election.ID,
		"from_status", string(from),
		"to_status", string(election.Status),
	)
	return election, nil
}
