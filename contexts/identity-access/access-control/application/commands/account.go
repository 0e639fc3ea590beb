package commands

import (
	"context"
	"log/slog"
	"time"

	"votingsystem/contexts/identity-access/access-control/application"
	"votingsystem/contexts/identity-access/access-control/domain/entities"
	domainerrors "votingsystem/contexts/identity-access/access-control/domain/errors"
	"votingsystem/contexts/identity-access/access-control/domain/services"
	"votingsystem/contexts/identity-access/access-control/ports"
	"votingsystem/contracts/faults"
)

// AccountUseCase covers self-service registration and login sessions.
type AccountUseCase struct {
	Guard      application.Guard
	Directory  ports.Directory
	Sessions   ports.SessionStore
	Tokens     ports.TokenGenerator
	Clock      ports.Clock
	SessionTTL time.Duration
	Logger     *slog.Logger
}

// Register admits a registration only when the role being registered
// carries the register capability.
func (uc AccountUseCase) Register(ctx context.Context, input ports.RegistrationInput) (ports.ActorView, error) {
	logger := application.ResolveLogger(uc.Logger)
	if !services.Grants(input.Role, entities.CapabilityRegister) {
		logger.Warn("registration denied",
			"event", "access_registration_denied",
			"module", "identity-access/access-control",
			"layer", "application",
			"role", string(input.Role),
			"username", input.Username,
		)
		return ports.ActorView{}, faults.Wrap(domainerrors.ErrUnauthorized,
			"role", string(input.Role),
			"capability", string(entities.CapabilityRegister),
		)
	}
	actor, err := uc.Directory.Register(ctx, input)
	if err != nil {
		return ports.ActorView{}, err
	}
	logger.Info("actor registered through access layer",
		"event", "access_actor_registered",
		"module", "identity-access/access-control",
		"layer", "application",
		"actor_id", actor.ActorID,
		"role", string(actor.Role),
	)
	return actor, nil
}

// Login authenticates the credentials and issues a session token. Banned
// actors may log in.
func (uc AccountUseCase) Login(ctx context.Context, username string, password string) (entities.Session, error) {
	logger := application.ResolveLogger(uc.Logger)
	actor, err := uc.Directory.Authenticate(ctx, username, password)
	if err != nil {
		return entities.Session{}, err
	}
	if _, err := uc.Guard.Authorize(ctx, entities.Actor(actor.ActorID), entities.CapabilityLogin); err != nil {
		return entities.Session{}, err
	}

	token, err := uc.Tokens.NewToken(ctx)
	if err != nil {
		logger.Error("session token generation failed",
			"event", "access_session_token_failed",
			"module", "identity-access/access-control",
			"layer", "application",
			"actor_id", actor.ActorID,
			"error", err.Error(),
		)
		return entities.Session{}, err
	}
	issuedAt := uc.now()
	session := entities.Session{
		Token:    token,
		ActorID:  actor.ActorID,
		Role:     actor.Role,
		IssuedAt: issuedAt,
	}
	if uc.SessionTTL > 0 {
		session.ExpiresAt = issuedAt.Add(uc.SessionTTL)
	}
	if err := uc.Sessions.SaveSession(ctx, session); err != nil {
		return entities.Session{}, err
	}

	logger.Info("session opened",
		"event", "access_session_opened",
		"module", "identity-access/access-control",
		"layer", "application",
		"actor_id", actor.ActorID,
		"role", string(actor.Role),
		"banned", actor.Banned,
	)
	return session, nil
}

// Logout revokes token. Unknown or expired tokens are unauthorized.
func (uc AccountUseCase) Logout(ctx context.Context, token string) error {
	logger := application.ResolveLogger(uc.Logger)
	session, found, err := uc.Sessions.GetSession(ctx, token)
	if err != nil {
		return err
	}
	if !found || session.Expired(uc.now()) {
		return domainerrors.ErrSessionNotFound
	}
	if _, err := uc.Guard.Authorize(ctx, session.Principal(), entities.CapabilityLogout); err != nil {
		return err
	}
	if _, err := uc.Sessions.DeleteSession(ctx, token); err != nil {
		return err
	}
	logger.Info("session closed",
		"event", "access_session_closed",
		"module", "identity-access/access-control",
		"layer", "application",
		"actor_id", session.ActorID,
	)
	return nil
}

func (uc AccountUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
