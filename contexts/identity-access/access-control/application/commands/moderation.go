package commands

import (
	"context"
	"log/slog"
	"strconv"

	"votingsystem/contexts/identity-access/access-control/application"
	"votingsystem/contexts/identity-access/access-control/domain/entities"
	domainerrors "votingsystem/contexts/identity-access/access-control/domain/errors"
	"votingsystem/contexts/identity-access/access-control/ports"
	"votingsystem/contracts/faults"
)

type ModerationUseCase struct {
	Guard     application.Guard
	Directory ports.Directory
	Logger    *slog.Logger
}

// BanVoter permanently bans a voter. Only actors with role Voter can be
// banned through this operation.
func (uc ModerationUseCase) BanVoter(ctx context.Context, principal entities.Principal, voterID int64) (ports.ActorView, error) {
	logger := application.ResolveLogger(uc.Logger)
	resolved, err := uc.Guard.Authorize(ctx, principal, entities.CapabilityBanVoter)
	if err != nil {
		return ports.ActorView{}, err
	}

	target, found, err := uc.Directory.GetActor(ctx, voterID)
	if err != nil {
		return ports.ActorView{}, err
	}
	if found && target.Role != entities.RoleVoter {
		logger.Warn("ban target is not a voter",
			"event", "access_ban_rejected",
			"module", "identity-access/access-control",
			"layer", "application",
			"actor_id", resolved.ActorID,
			"target_id", voterID,
			"target_role", string(target.Role),
		)
		return ports.ActorView{}, faults.Wrap(domainerrors.ErrTargetNotVoter,
			"actor_id", strconv.FormatInt(voterID, 10),
			"role", string(target.Role),
		)
	}

	// Unknown targets fall through so the directory reports ActorNotFound.
	banned, err := uc.Directory.Ban(ctx, voterID)
	if err != nil {
		return ports.ActorView{}, err
	}
	logger.Info("voter banned",
		"event", "access_voter_banned",
		"module", "identity-access/access-control",
		"layer", "application",
		"actor_id", resolved.ActorID,
		"target_id", banned.ActorID,
	)
	return banned, nil
}
