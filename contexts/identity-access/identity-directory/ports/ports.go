package ports

import (
	"context"
	"iter"
	"time"

	"votingsystem/contexts/identity-access/identity-directory/domain/entities"
)

// ActorRepository owns actor state. InsertActor must check id, username and
// email uniqueness and append atomically.
type ActorRepository interface {
	InsertActor(ctx context.Context, actor entities.Actor) (entities.Actor, error)
	GetActor(ctx context.Context, actorID int64) (entities.Actor, error)
	FindActorByUsername(ctx context.Context, username string) (entities.Actor, bool, error)
	ActorsByRole(ctx context.Context, role entities.Role) iter.Seq[entities.Actor]
	MarkBanned(ctx context.Context, actorID int64) (entities.Actor, error)
	CountActors(ctx context.Context) (int, error)
}

type Clock interface {
	Now() time.Time
}
