package application

import (
	"context"
	"log/slog"
	"strconv"

	"votingsystem/contexts/identity-access/access-control/domain/entities"
	domainerrors "votingsystem/contexts/identity-access/access-control/domain/errors"
	"votingsystem/contexts/identity-access/access-control/domain/services"
	"votingsystem/contexts/identity-access/access-control/ports"
	"votingsystem/contracts/faults"
)

// Guard resolves the acting principal and checks its capability before any
// owner is called.
type Guard struct {
	Directory ports.Directory
	Logger    *slog.Logger
}

// Resolve returns the principal with its current role and ban flag. Guests
// resolve to themselves; an actor id the directory does not know is
// unauthorized.
func (g Guard) Resolve(ctx context.Context, principal entities.Principal) (entities.Principal, error) {
	if principal.IsGuest() {
		return entities.Guest(), nil
	}
	actor, found, err := g.Directory.GetActor(ctx, principal.ActorID)
	if err != nil {
		return entities.Principal{}, err
	}
	if !found {
		return entities.Principal{}, faults.Wrap(domainerrors.ErrUnknownPrincipal,
			"actor_id", strconv.FormatInt(principal.ActorID, 10),
		)
	}
	return entities.Principal{ActorID: actor.ActorID, Role: actor.Role, Banned: actor.Banned}, nil
}

// Authorize resolves principal and rejects it when its role lacks capability.
func (g Guard) Authorize(
	ctx context.Context,
	principal entities.Principal,
	capability entities.Capability,
) (entities.Principal, error) {
	logger := ResolveLogger(g.Logger)
	resolved, err := g.Resolve(ctx, principal)
	if err != nil {
		logger.Warn("principal resolution failed",
			"event", "access_principal_unresolved",
			"module", "identity-access/access-control",
			"layer", "application",
			"actor_id", principal.ActorID,
			"capability", string(capability),
			"error", err.Error(),
		)
		return entities.Principal{}, err
	}
	if !services.Grants(resolved.Role, capability) {
		logger.Warn("authorization denied",
			"event", "access_authorization_denied",
			"module", "identity-access/access-control",
			"layer", "application",
			"actor_id", resolved.ActorID,
			"role", string(resolved.Role),
			"capability", string(capability),
		)
		return entities.Principal{}, faults.Wrap(domainerrors.ErrUnauthorized,
			"role", string(resolved.Role),
			"capability", string(capability),
		)
	}
	return resolved, nil
}
