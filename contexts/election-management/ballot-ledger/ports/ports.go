package ports

import (
	"context"
	"slices"
	"time"

	"votingsystem/contexts/election-management/ballot-ledger/domain/entities"
)

// VoteRepository is append-only. AppendVote assigns the next vote id and must
// perform the one-vote-per-voter check and the append in one critical section.
type VoteRepository interface {
	AppendVote(ctx context.Context, vote entities.Vote) (entities.Vote, error)
	FindVote(ctx context.Context, electionID int64, voterID int64) (entities.Vote, bool, error)
	ListVotesByElection(ctx context.Context, electionID int64) ([]entities.Vote, error)
	CountVotes(ctx context.Context) (int, error)
}

// ElectionProjection is the ledger's read model of a registry election.
type ElectionProjection struct {
	ElectionID int64
	Status     string
	Candidates []int64
}

func (p ElectionProjection) IsOpen() bool {
	return p.Status == "Opened"
}

func (p ElectionProjection) HasCandidate(candidateID int64) bool {
	return slices.Contains(p.Candidates, candidateID)
}

type ElectionDirectory interface {
	GetElection(ctx context.Context, electionID int64) (ElectionProjection, bool, error)
}

// VoterProjection is the ledger's read model of a directory actor.
type VoterProjection struct {
	ActorID int64
	Role    string
	Banned  bool
}

type VoterDirectory interface {
	GetVoter(ctx context.Context, voterID int64) (VoterProjection, bool, error)
}

type Clock interface {
	Now() time.Time
}
