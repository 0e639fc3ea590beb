package ports

import (
	"context"
	"iter"
	"time"

	"votingsystem/contexts/identity-access/access-control/domain/entities"
)

// ActorView is the access layer's read model of a directory actor.
type ActorView struct {
	ActorID      int64
	Username     string
	Email        string
	Profile      string
	Role         entities.Role
	Banned       bool
	RegisteredAt time.Time
}

type RegistrationInput struct {
	ActorID  int64
	Username string
	Email    string
	Password string
	Profile  string
	Role     entities.Role
}

// Directory is the identity directory as seen from the access layer.
type Directory interface {
	GetActor(ctx context.Context, actorID int64) (ActorView, bool, error)
	Register(ctx context.Context, input RegistrationInput) (ActorView, error)
	Authenticate(ctx context.Context, username string, password string) (ActorView, error)
	Ban(ctx context.Context, actorID int64) (ActorView, error)
	ActorsByRole(ctx context.Context, role entities.Role) iter.Seq[ActorView]
}

// ElectionView carries the status as its display label.
type ElectionView struct {
	ElectionID  int64
	Title       string
	Description string
	Status      string
	Candidates  []int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ElectionInput struct {
	ElectionID  int64
	Title       string
	Description string
}

// Registry is the election registry as seen from the access layer.
type Registry interface {
	CreateElection(ctx context.Context, input ElectionInput) (ElectionView, error)
	UpdateElection(ctx context.Context, input ElectionInput) (ElectionView, error)
	OpenElection(ctx context.Context, electionID int64) (ElectionView, error)
	CloseElection(ctx context.Context, electionID int64) (ElectionView, error)
	AddCandidate(ctx context.Context, electionID int64, candidateID int64) (ElectionView, error)
	RemoveCandidate(ctx context.Context, electionID int64, candidateID int64) (ElectionView, error)
	GetElection(ctx context.Context, electionID int64) (ElectionView, error)
	ListElections(ctx context.Context) ([]ElectionView, error)
	ElectionsForCandidate(ctx context.Context, candidateID int64) ([]ElectionView, error)
	ListCandidates(ctx context.Context, electionID int64) ([]ActorView, error)
}

type VoteView struct {
	VoteID      int64
	ElectionID  int64
	VoterID     int64
	CandidateID int64
	CastAt      time.Time
}

type TallyLine struct {
	CandidateID int64
	Votes       int
}

type TallyView struct {
	ElectionID int64
	Lines      []TallyLine
}

// Ledger is the ballot ledger as seen from the access layer.
type Ledger interface {
	CastVote(ctx context.Context, electionID int64, voterID int64, candidateID int64) (VoteView, error)
	HasVoted(ctx context.Context, electionID int64, voterID int64) (bool, error)
	Tally(ctx context.Context, electionID int64) (TallyView, error)
	VotesForCandidate(ctx context.Context, electionID int64, candidateID int64) (int, error)
	Rules(ctx context.Context) []string
}

// SessionStore keeps issued sessions keyed by token.
type SessionStore interface {
	SaveSession(ctx context.Context, session entities.Session) error
	GetSession(ctx context.Context, token string) (entities.Session, bool, error)
	DeleteSession(ctx context.Context, token string) (bool, error)
}

type TokenGenerator interface {
	NewToken(ctx context.Context) (string, error)
}

type Clock interface {
	Now() time.Time
}
