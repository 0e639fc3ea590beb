package memory

import (
	"context"
	"sync"
	"time"

	"votingsystem/contexts/election-management/ballot-ledger/domain/entities"
	domainerrors "votingsystem/contexts/election-management/ballot-ledger/domain/errors"
)

type voteKey struct {
	electionID int64
	voterID    int64
}

// Store is the in-memory append-only ledger. The (election, voter) index
// backs both the duplicate check and HasVoted lookups.
type Store struct {
	mu sync.RWMutex

	votes   []entities.Vote
	byVoter map[voteKey]int
	lastID  int64
}

func NewStore() *Store {
	return &Store{
		byVoter: make(map[voteKey]int),
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) AppendVote(_ context.Context, vote entities.Vote) (entities.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := voteKey{electionID: vote.ElectionID, voterID: vote.VoterID}
	if _, exists := s.byVoter[key]; exists {
		return entities.Vote{}, domainerrors.ErrAlreadyVoted
	}
	s.lastID++
	vote.ID = s.lastID
	s.byVoter[key] = len(s.votes)
	s.votes = append(s.votes, vote)
	return vote, nil
}

func (s *Store) FindVote(_ context.Context, electionID int64, voterID int64) (entities.Vote, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	index, ok := s.byVoter[voteKey{electionID: electionID, voterID: voterID}]
	if !ok {
		return entities.Vote{}, false, nil
	}
	return s.votes[index], true, nil
}

func (s *Store) ListVotesByElection(_ context.Context, electionID int64) ([]entities.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Vote, 0)
	for _, vote := range s.votes {
		if vote.ElectionID == electionID {
			items = append(items, vote)
		}
	}
	return items, nil
}

func (s *Store) CountVotes(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.votes), nil
}
