package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"votingsystem/contexts/election-management/election-registry/domain/entities"
	domainerrors "votingsystem/contexts/election-management/election-registry/domain/errors"
)

// Store keeps elections keyed by id. Every read returns a clone so callers
// never hold a handle on the stored roster.
type Store struct {
	mu        sync.RWMutex
	elections map[int64]entities.Election
}

func NewStore(seed []entities.Election) *Store {
	elections := make(map[int64]entities.Election, len(seed))
	for _, election := range seed {
		elections[election.ID] = election.Clone()
	}
	return &Store{elections: elections}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) InsertElection(_ context.Context, election entities.Election) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.elections[election.ID]; exists {
		return domainerrors.ErrDuplicateElectionID
	}
	s.elections[election.ID] = election.Clone()
	return nil
}

func (s *Store) GetElection(_ context.Context, electionID int64) (entities.Election, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	election, ok := s.elections[electionID]
	if !ok {
		return entities.Election{}, domainerrors.ErrElectionNotFound
	}
	return election.Clone(), nil
}

func (s *Store) ListElections(_ context.Context) ([]entities.Election, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Election, 0, len(s.elections))
	for _, election := range s.elections {
		items = append(items, election.Clone())
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (s *Store) MutateElection(
	_ context.Context,
	electionID int64,
	fn func(*entities.Election) error,
) (entities.Election, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.elections[electionID]
	if !ok {
		return entities.Election{}, domainerrors.ErrElectionNotFound
	}
	working := current.Clone()
	if err := fn(&working); err != nil {
		return entities.Election{}, err
	}
	working.ID = current.ID
	s.elections[electionID] = working
	return working.Clone(), nil
}
