package memory

import (
	"context"
	"errors"
	"testing"

	"votingsystem/contexts/identity-access/identity-directory/domain/entities"
	domainerrors "votingsystem/contexts/identity-access/identity-directory/domain/errors"
)

func TestInsertActorAssignsNextID(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if _, err := store.InsertActor(ctx, entities.Actor{ID: 101, Username: "cand1", Email: "c1@mail.com", Role: entities.RoleCandidate}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	actor, err := store.InsertActor(ctx, entities.Actor{Username: "voter1", Email: "v1@mail.com", Role: entities.RoleVoter})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if actor.ID != 102 {
		t.Fatalf("expected assigned id 102, got %d", actor.ID)
	}
}

func TestInsertActorRejectsDuplicates(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	if _, err := store.InsertActor(ctx, entities.Actor{ID: 1, Username: "voter1", Email: "v1@mail.com", Role: entities.RoleVoter}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	cases := []struct {
		name  string
		actor entities.Actor
		want  error
	}{
		{"username", entities.Actor{ID: 2, Username: "voter1", Email: "other@mail.com"}, domainerrors.ErrDuplicateUsername},
		{"email", entities.Actor{ID: 2, Username: "voter2", Email: "v1@mail.com"}, domainerrors.ErrDuplicateEmail},
		{"id", entities.Actor{ID: 1, Username: "voter2", Email: "v2@mail.com"}, domainerrors.ErrDuplicateActorID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := store.InsertActor(ctx, tc.actor); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if count, _ := store.CountActors(ctx); count != 1 {
		t.Fatalf("expected 1 actor, got %d", count)
	}
}

func TestActorsByRoleRescansOnEveryRange(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	_, _ = store.InsertActor(ctx, entities.Actor{ID: 1, Username: "voter1", Email: "v1@mail.com", Role: entities.RoleVoter})
	_, _ = store.InsertActor(ctx, entities.Actor{ID: 101, Username: "cand1", Email: "c1@mail.com", Role: entities.RoleCandidate})

	voters := store.ActorsByRole(ctx, entities.RoleVoter)
	count := 0
	for range voters {
		count++
	}
	if count != 1 {
		t.Fatalf("expected 1 voter, got %d", count)
	}

	_, _ = store.InsertActor(ctx, entities.Actor{ID: 2, Username: "voter2", Email: "v2@mail.com", Role: entities.RoleVoter})
	var ids []int64
	for actor := range voters {
		ids = append(ids, actor.ID)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Fatalf("expected voters [1 2] in registration order, got %v", ids)
	}
}

func TestMarkBannedIsOneWay(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	_, _ = store.InsertActor(ctx, entities.Actor{ID: 1, Username: "voter1", Email: "v1@mail.com", Role: entities.RoleVoter})

	for i := 0; i < 2; i++ {
		actor, err := store.MarkBanned(ctx, 1)
		if err != nil {
			t.Fatalf("ban failed: %v", err)
		}
		if !actor.Banned {
			t.Fatal("expected banned actor")
		}
	}
	if _, err := store.MarkBanned(ctx, 99); !errors.Is(err, domainerrors.ErrActorNotFound) {
		t.Fatalf("expected actor not found, got %v", err)
	}
}
