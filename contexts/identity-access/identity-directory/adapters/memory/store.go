package memory

import (
	"context"
	"iter"
	"strings"
	"sync"
	"time"

	"votingsystem/contexts/identity-access/identity-directory/domain/entities"
	domainerrors "votingsystem/contexts/identity-access/identity-directory/domain/errors"
)

// Store is the in-memory actor directory. Actors are kept in registration
// order; usernames and emails are indexed for the uniqueness checks.
type Store struct {
	mu sync.RWMutex

	actors     map[int64]entities.Actor
	order      []int64
	byUsername map[string]int64
	byEmail    map[string]int64
	maxID      int64
}

func NewStore() *Store {
	return &Store{
		actors:     make(map[int64]entities.Actor),
		byUsername: make(map[string]int64),
		byEmail:    make(map[string]int64),
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) InsertActor(_ context.Context, actor entities.Actor) (entities.Actor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor.Username = strings.TrimSpace(actor.Username)
	actor.Email = strings.TrimSpace(actor.Email)
	if _, exists := s.byUsername[actor.Username]; exists {
		return entities.Actor{}, domainerrors.ErrDuplicateUsername
	}
	if _, exists := s.byEmail[actor.Email]; exists {
		return entities.Actor{}, domainerrors.ErrDuplicateEmail
	}
	if actor.ID == 0 {
		actor.ID = s.maxID + 1
	}
	if _, exists := s.actors[actor.ID]; exists {
		return entities.Actor{}, domainerrors.ErrDuplicateActorID
	}

	s.actors[actor.ID] = actor
	s.order = append(s.order, actor.ID)
	s.byUsername[actor.Username] = actor.ID
	s.byEmail[actor.Email] = actor.ID
	if actor.ID > s.maxID {
		s.maxID = actor.ID
	}
	return actor, nil
}

func (s *Store) GetActor(_ context.Context, actorID int64) (entities.Actor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	actor, ok := s.actors[actorID]
	if !ok {
		return entities.Actor{}, domainerrors.ErrActorNotFound
	}
	return actor, nil
}

func (s *Store) FindActorByUsername(_ context.Context, username string) (entities.Actor, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byUsername[strings.TrimSpace(username)]
	if !ok {
		return entities.Actor{}, false, nil
	}
	return s.actors[id], true, nil
}

// ActorsByRole snapshots the registration order when iteration starts and
// reads each actor under its own read lock, so a consumer may call back into
// the store while ranging.
func (s *Store) ActorsByRole(_ context.Context, role entities.Role) iter.Seq[entities.Actor] {
	return func(yield func(entities.Actor) bool) {
		s.mu.RLock()
		ids := append([]int64(nil), s.order...)
		s.mu.RUnlock()

		for _, id := range ids {
			s.mu.RLock()
			actor, ok := s.actors[id]
			s.mu.RUnlock()
			if !ok || actor.Role != role {
				continue
			}
			if !yield(actor) {
				return
			}
		}
	}
}

func (s *Store) MarkBanned(_ context.Context, actorID int64) (entities.Actor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	actor, ok := s.actors[actorID]
	if !ok {
		return entities.Actor{}, domainerrors.ErrActorNotFound
	}
	actor.Banned = true
	s.actors[actorID] = actor
	return actor, nil
}

func (s *Store) CountActors(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.actors), nil
}
