package queries

import (
	"context"
	"time"

	"votingsystem/contexts/identity-access/access-control/application"
	"votingsystem/contexts/identity-access/access-control/domain/entities"
	domainerrors "votingsystem/contexts/identity-access/access-control/domain/errors"
	"votingsystem/contexts/identity-access/access-control/ports"
)

type SessionUseCase struct {
	Guard    application.Guard
	Sessions ports.SessionStore
	Clock    ports.Clock
}

// Resolve maps a session token to its principal. The empty token is a guest.
func (uc SessionUseCase) Resolve(ctx context.Context, token string) (entities.Principal, error) {
	if token == "" {
		return entities.Guest(), nil
	}
	session, found, err := uc.Sessions.GetSession(ctx, token)
	if err != nil {
		return entities.Principal{}, err
	}
	if !found || session.Expired(uc.now()) {
		return entities.Principal{}, domainerrors.ErrSessionNotFound
	}
	return uc.Guard.Resolve(ctx, session.Principal())
}

func (uc SessionUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
