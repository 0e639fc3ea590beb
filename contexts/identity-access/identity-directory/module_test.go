package identitydirectory

import (
	"context"
	"errors"
	"testing"

	"votingsystem/contexts/identity-access/identity-directory/application/commands"
	"votingsystem/contexts/identity-access/identity-directory/domain/entities"
	domainerrors "votingsystem/contexts/identity-access/identity-directory/domain/errors"
	"votingsystem/contracts/faults"
)

func register(t *testing.T, module Module, registration entities.Registration) entities.Actor {
	t.Helper()
	actor, err := module.Register.Execute(context.Background(), commands.RegisterCommand{Registration: registration})
	if err != nil {
		t.Fatalf("register %s failed: %v", registration.Username, err)
	}
	return actor
}

func TestRegisterCandidateRequiresProfile(t *testing.T) {
	module := NewInMemoryModule(nil)
	_, err := module.Register.Execute(context.Background(), commands.RegisterCommand{Registration: entities.Registration{
		Username: "cand1",
		Email:    "c1@mail.com",
		Password: "123",
		Role:     entities.RoleCandidate,
	}})
	if !errors.Is(err, domainerrors.ErrEmptyField) {
		t.Fatalf("expected empty field, got %v", err)
	}
	if faults.MetadataOf(err)["field"] != "profile" {
		t.Fatalf("expected profile field in metadata, got %v", faults.MetadataOf(err))
	}
	if faults.KindOf(err) != faults.KindValidationFailed {
		t.Fatalf("expected validation kind, got %s", faults.KindOf(err))
	}
}

func TestRegisterRejectsEmptyFieldsInOrder(t *testing.T) {
	module := NewInMemoryModule(nil)
	cases := []struct {
		registration entities.Registration
		field        string
	}{
		{entities.Registration{Email: "a@mail.com", Password: "x", Role: entities.RoleVoter}, "username"},
		{entities.Registration{Username: "a", Password: "x", Role: entities.RoleVoter}, "email"},
		{entities.Registration{Username: "a", Email: "a@mail.com", Password: "  ", Role: entities.RoleVoter}, "password"},
	}
	for _, tc := range cases {
		_, err := module.Register.Execute(context.Background(), commands.RegisterCommand{Registration: tc.registration})
		if !errors.Is(err, domainerrors.ErrEmptyField) {
			t.Fatalf("expected empty field for %s, got %v", tc.field, err)
		}
		if got := faults.MetadataOf(err)["field"]; got != tc.field {
			t.Fatalf("expected field %s, got %s", tc.field, got)
		}
	}
}

func TestRegisterDuplicateUsernameLeavesCountUnchanged(t *testing.T) {
	module := NewInMemoryModule(nil)
	ctx := context.Background()
	register(t, module, entities.Registration{ID: 1, Username: "voter1", Email: "v1@mail.com", Password: "123", Role: entities.RoleVoter})

	before, _ := module.Lookup.Count(ctx)
	_, err := module.Register.Execute(ctx, commands.RegisterCommand{Registration: entities.Registration{
		Username: "voter1",
		Email:    "fresh@mail.com",
		Password: "123",
		Profile:  "Profile",
		Role:     entities.RoleCandidate,
	}})
	if !errors.Is(err, domainerrors.ErrDuplicateUsername) {
		t.Fatalf("expected duplicate username, got %v", err)
	}
	after, _ := module.Lookup.Count(ctx)
	if before != after {
		t.Fatalf("expected count %d unchanged, got %d", before, after)
	}
}

func TestAuthenticateIgnoresBanFlag(t *testing.T) {
	module := NewInMemoryModule(nil)
	ctx := context.Background()
	voter := register(t, module, entities.Registration{ID: 3, Username: "voter3", Email: "v3@mail.com", Password: "123", Role: entities.RoleVoter})

	if _, err := module.Ban.Execute(ctx, commands.BanCommand{ActorID: voter.ID}); err != nil {
		t.Fatalf("ban failed: %v", err)
	}
	actor, err := module.Authenticate.Execute(ctx, "voter3", "123")
	if err != nil {
		t.Fatalf("banned actor should still authenticate: %v", err)
	}
	if !actor.Banned {
		t.Fatal("expected banned flag on authenticated actor")
	}
	if _, err := module.Authenticate.Execute(ctx, "voter3", "wrong"); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, err := module.Authenticate.Execute(ctx, "nobody", "123"); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestBanUnknownActor(t *testing.T) {
	module := NewInMemoryModule(nil)
	_, err := module.Ban.Execute(context.Background(), commands.BanCommand{ActorID: 42})
	if !errors.Is(err, domainerrors.ErrActorNotFound) {
		t.Fatalf("expected actor not found, got %v", err)
	}
	if faults.MetadataOf(err)["actor_id"] != "42" {
		t.Fatalf("expected actor_id metadata, got %v", faults.MetadataOf(err))
	}
}

func TestLookupFindByIDAndRole(t *testing.T) {
	module := NewInMemoryModule(nil)
	ctx := context.Background()
	register(t, module, entities.Registration{ID: 101, Username: "cand1", Email: "c1@mail.com", Password: "123", Profile: "Profile 1", Role: entities.RoleCandidate})
	register(t, module, entities.Registration{ID: 1, Username: "voter1", Email: "v1@mail.com", Password: "123", Profile: "ignored", Role: entities.RoleVoter})

	voter, found, err := module.Lookup.FindByID(ctx, 1)
	if err != nil || !found {
		t.Fatalf("expected voter 1, found=%v err=%v", found, err)
	}
	if voter.Profile != "" {
		t.Fatalf("expected profile dropped for voters, got %q", voter.Profile)
	}
	if _, found, _ := module.Lookup.FindByID(ctx, 999); found {
		t.Fatal("expected unknown id to be absent")
	}

	var candidates []int64
	for actor := range module.Lookup.ByRole(ctx, entities.RoleCandidate) {
		candidates = append(candidates, actor.ID)
	}
	if len(candidates) != 1 || candidates[0] != 101 {
		t.Fatalf("expected [101], got %v", candidates)
	}
}
