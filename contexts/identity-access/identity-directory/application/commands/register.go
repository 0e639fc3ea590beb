package commands

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"votingsystem/contexts/identity-access/identity-directory/application"
	"votingsystem/contexts/identity-access/identity-directory/domain/entities"
	domainerrors "votingsystem/contexts/identity-access/identity-directory/domain/errors"
	"votingsystem/contexts/identity-access/identity-directory/ports"
	"votingsystem/contracts/faults"
)

// RegisterCommand is the write-model input for actor registration.
type RegisterCommand struct {
	Registration entities.Registration
}

// RegisterUseCase validates a registration and appends the new actor.
// Uniqueness is re-checked by the repository inside its own critical section.
type RegisterUseCase struct {
	Actors ports.ActorRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

func (uc RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (entities.Actor, error) {
	logger := application.ResolveLogger(uc.Logger)
	registration := cmd.Registration.Normalize()

	if !registration.Role.Valid() {
		logger.Warn("actor registration rejected",
			"event", "directory_register_invalid_role",
			"module", "identity-access/identity-directory",
			"layer", "application",
			"role", string(registration.Role),
		)
		return entities.Actor{}, faults.Wrap(domainerrors.ErrInvalidRole, "role", string(registration.Role))
	}
	if field := registration.MissingField(); field != "" {
		logger.Warn("actor registration rejected",
			"event", "directory_register_validation_failed",
			"module", "identity-access/identity-directory",
			"layer", "application",
			"field", field,
		)
		return entities.Actor{}, faults.Wrap(domainerrors.ErrEmptyField, "field", field)
	}
	if registration.ID < 0 {
		return entities.Actor{}, faults.Wrap(domainerrors.ErrInvalidActorID, "actor_id", actorIDString(registration.ID))
	}

	actor, err := uc.Actors.InsertActor(ctx, entities.Actor{
		ID:           registration.ID,
		Username:     registration.Username,
		Email:        registration.Email,
		Password:     registration.Password,
		Role:         registration.Role,
		Profile:      registration.Profile,
		RegisteredAt: uc.now(),
	})
	if err != nil {
		logger.Warn("actor registration rejected",
			"event", "directory_register_conflict",
			"module", "identity-access/identity-directory",
			"layer", "application",
			"username", registration.Username,
			"error", err.Error(),
		)
		return entities.Actor{}, faults.Wrap(err, "username", registration.Username)
	}

	logger.Info("actor registered",
		"event", "directory_actor_registered",
		"module", "identity-access/identity-directory",
		"layer", "application",
		"actor_id", actor.ID,
		"username", actor.Username,
		"role", string(actor.Role),
	)
	return actor, nil
}

func (uc RegisterUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now().UTC()
	}
	return time.Now().UTC()
}

func actorIDString(id int64) string {
	return strconv.FormatInt(id, 10)
}
