package queries

import (
	"context"
	"log/slog"
	"strings"

	"votingsystem/contexts/identity-access/identity-directory/application"
	"votingsystem/contexts/identity-access/identity-directory/domain/entities"
	domainerrors "votingsystem/contexts/identity-access/identity-directory/domain/errors"
	"votingsystem/contexts/identity-access/identity-directory/ports"
)

// AuthenticateUseCase resolves credentials to an actor. Ban status is not
// consulted here; operations that forbid banned actors enforce it themselves.
type AuthenticateUseCase struct {
	Actors ports.ActorRepository
	Logger *slog.Logger
}

func (uc AuthenticateUseCase) Execute(ctx context.Context, username string, password string) (entities.Actor, error) {
	logger := application.ResolveLogger(uc.Logger)
	username = strings.TrimSpace(username)

	actor, found, err := uc.Actors.FindActorByUsername(ctx, username)
	if err != nil {
		logger.Error("credential lookup failed",
			"event", "directory_authenticate_lookup_failed",
			"module", "identity-access/identity-directory",
			"layer", "application",
			"username", username,
			"error", err.Error(),
		)
		return entities.Actor{}, err
	}
	if !found || !actor.PasswordMatches(password) {
		logger.Warn("authentication rejected",
			"event", "directory_authenticate_rejected",
			"module", "identity-access/identity-directory",
			"layer", "application",
			"username", username,
		)
		return entities.Actor{}, domainerrors.ErrInvalidCredentials
	}

	logger.Debug("actor authenticated",
		"event", "directory_authenticated",
		"module", "identity-access/identity-directory",
		"layer", "application",
		"actor_id", actor.ID,
		"role", string(actor.Role),
		"banned", actor.Banned,
	)
	return actor, nil
}
