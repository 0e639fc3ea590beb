package ports

import (
	"context"
	"time"

	"votingsystem/contexts/election-management/election-registry/domain/entities"
)

// ElectionRepository owns election state. MutateElection runs fn against the
// stored election under the repository lock and persists the result only when
// fn returns nil.
type ElectionRepository interface {
	InsertElection(ctx context.Context, election entities.Election) error
	GetElection(ctx context.Context, electionID int64) (entities.Election, error)
	ListElections(ctx context.Context) ([]entities.Election, error)
	MutateElection(ctx context.Context, electionID int64, fn func(*entities.Election) error) (entities.Election, error)
}

// ActorProjection is the registry's read model of a directory actor.
type ActorProjection struct {
	ActorID  int64
	Username string
	Email    string
	Profile  string
	Role     string
	Banned   bool
}

func (p ActorProjection) IsCandidate() bool {
	return p.Role == "Candidate"
}

// CandidateDirectory resolves roster ids against the identity directory.
type CandidateDirectory interface {
	GetActor(ctx context.Context, actorID int64) (ActorProjection, bool, error)
}

type Clock interface {
	Now() time.Time
}
