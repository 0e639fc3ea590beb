package commands

import (
	"context"
	"log/slog"

	"votingsystem/contexts/identity-access/identity-directory/application"
	"votingsystem/contexts/identity-access/identity-directory/domain/entities"
	"votingsystem/contexts/identity-access/identity-directory/ports"
	"votingsystem/contracts/faults"
)

type BanCommand struct {
	ActorID int64
}

// BanUseCase flips the ban flag. There is no unban: the transition only moves
// forward and repeating it is a no-op.
type BanUseCase struct {
	Actors ports.ActorRepository
	Logger *slog.Logger
}

func (uc BanUseCase) Execute(ctx context.Context, cmd BanCommand) (entities.Actor, error) {
	logger := application.ResolveLogger(uc.Logger)
	actor, err := uc.Actors.MarkBanned(ctx, cmd.ActorID)
	if err != nil {
		logger.Warn("actor ban rejected",
			"event", "directory_ban_failed",
			"module", "identity-access/identity-directory",
			"layer", "application",
			"actor_id", cmd.ActorID,
			"error", err.Error(),
		)
		return entities.Actor{}, faults.Wrap(err, "actor_id", actorIDString(cmd.ActorID))
	}
	logger.Info("actor banned",
		"event", "directory_actor_banned",
		"module", "identity-access/identity-directory",
		"layer", "application",
		"actor_id", actor.ID,
		"role", string(actor.Role),
	)
	return actor, nil
}
